package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blinkdeploys/tokenscope/pkg/catalog"
	"blinkdeploys/tokenscope/pkg/cli"
	"blinkdeploys/tokenscope/pkg/config"
	"blinkdeploys/tokenscope/pkg/processing"
	"blinkdeploys/tokenscope/pkg/processing/tokens"
)

func testProcessor(t *testing.T) *processing.Processor {
	t.Helper()
	counter := tokens.CounterFunc(func(text, _ string) (int, error) {
		return len(strings.Fields(text)), nil
	})
	p, err := processing.NewFromConfig(&config.Default().Processing, counter, catalog.Default())
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	return p
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "hello world")
	bad := writeFile(t, dir, "bad.bin", string([]byte{0xff, 0xfe}))

	text, err := readInput(good, nil)
	if err != nil || text != "hello world" {
		t.Errorf("readInput(file) = %q, %v", text, err)
	}

	text, err = readInput("-", strings.NewReader("from stdin"))
	if err != nil || text != "from stdin" {
		t.Errorf("readInput(stdin) = %q, %v", text, err)
	}

	if _, err := readInput(bad, nil); !errors.Is(err, errNotText) {
		t.Errorf("readInput(binary) error = %v, want errNotText", err)
	}

	if _, err := readInput(filepath.Join(dir, "missing.txt"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("readInput(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestAnalyzeFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.txt", "one two three"),
		writeFile(t, dir, "b.txt", "four five"),
		writeFile(t, dir, "c.txt", "six"),
	}

	progress := &bytes.Buffer{}
	reports, err := analyzeFiles(context.Background(), testProcessor(t), paths, nil, progress)
	if err != nil {
		t.Fatalf("analyzeFiles() error = %v", err)
	}

	wantWords := []int{3, 2, 1}
	for i, r := range reports {
		if r.TextStats.Words != wantWords[i] {
			t.Errorf("report %d words = %d, want %d", i, r.TextStats.Words, wantWords[i])
		}
	}
	if !strings.Contains(progress.String(), "(3/3)") {
		t.Errorf("expected finished progress, got %q", progress.String())
	}
}

func TestAnalyzeFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "text")
	empty := writeFile(t, dir, "empty.txt", "   ")

	_, err := analyzeFiles(context.Background(), testProcessor(t), []string{good, empty}, nil, &bytes.Buffer{})
	if !errors.Is(err, processing.ErrEmptyInput) {
		t.Errorf("analyzeFiles() error = %v, want ErrEmptyInput", err)
	}
	if err != nil && !strings.Contains(err.Error(), "empty.txt") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestWriteReports(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.txt", "one two three"),
		writeFile(t, dir, "b.txt", "four five"),
	}
	p := testProcessor(t)
	projector := p.Projector()
	reports, err := analyzeFiles(context.Background(), p, paths, nil, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	models := len(reports[0].CostAnalysis)

	t.Run("json array", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := writeReports(buf, cli.FormatJSON, paths, reports, projector, ""); err != nil {
			t.Fatal(err)
		}
		var out []struct {
			File string `json:"file"`
		}
		if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(out) != 2 || out[0].File != paths[0] {
			t.Errorf("unexpected JSON output: %+v", out)
		}
	})

	t.Run("csv with file column", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := writeReports(buf, cli.FormatCSV, paths, reports, projector, ""); err != nil {
			t.Fatal(err)
		}
		records, err := csv.NewReader(buf).ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 2*models+1 {
			t.Errorf("got %d CSV records, want %d", len(records), 2*models+1)
		}
		if records[0][0] != "file" || records[1][0] != paths[0] {
			t.Errorf("unexpected CSV layout: %v / %v", records[0], records[1])
		}
	})

	t.Run("text sections", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := writeReports(buf, cli.FormatText, paths, reports, projector, ""); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "==> "+paths[1]+" <==") {
			t.Errorf("missing section header for %s", paths[1])
		}
	})

	t.Run("single model", func(t *testing.T) {
		first := reports[0].CostAnalysis[0]
		buf := &bytes.Buffer{}
		if err := writeReports(buf, cli.FormatCSV, paths[:1], reports[:1], projector, first.Provider+"/"+first.Model); err != nil {
			t.Fatal(err)
		}
		records, err := csv.NewReader(buf).ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if len(records) != 2 {
			t.Errorf("got %d CSV records, want 2", len(records))
		}
	})

	t.Run("model names ignore case", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := writeReports(buf, cli.FormatJSON, paths[:1], reports[:1], projector, "anthropic/claude-sonnet-3.5"); err != nil {
			t.Fatal(err)
		}
		var view cli.ModelView
		if err := json.Unmarshal(buf.Bytes(), &view); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if view.Analysis.Provider != "Anthropic" || view.Analysis.Model != "Claude-Sonnet-3.5" {
			t.Errorf("resolved %s/%s, want Anthropic/Claude-Sonnet-3.5", view.Analysis.Provider, view.Analysis.Model)
		}
		if view.Tokens != reports[0].TextStats.OriginalTokens {
			t.Errorf("Tokens = %d, want %d", view.Tokens, reports[0].TextStats.OriginalTokens)
		}
	})

	t.Run("bare model name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := writeReports(buf, cli.FormatCSV, paths[:1], reports[:1], projector, "gpt-4o"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "GPT-4o") {
			t.Errorf("expected GPT-4o row, got %q", buf.String())
		}
	})

	t.Run("unknown model", func(t *testing.T) {
		err := writeReports(&bytes.Buffer{}, cli.FormatText, paths, reports, projector, "nobody/nothing")
		var cfgErr *cli.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("writeReports() error = %v, want ConfigError", err)
		}
	})
}

func TestCheckStdinOnce(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"files only", []string{"a.txt", "b.txt"}, false},
		{"stdin once", []string{"-", "a.txt"}, false},
		{"stdin twice", []string{"-", "a.txt", "-"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStdinOnce(tt.args)
			var cfgErr *cli.ConfigError
			if got := errors.As(err, &cfgErr); got != tt.wantErr {
				t.Errorf("checkStdinOnce(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}
