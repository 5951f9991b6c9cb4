package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"blinkdeploys/tokenscope/pkg/cli"
	"blinkdeploys/tokenscope/pkg/processing"
	"blinkdeploys/tokenscope/pkg/processing/costs"
)

var analyzeFlags struct {
	format string
	model  string
	watch  bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Estimate LLM costs for text files",
	Long: `Analyze one or more text files and report token counts, compression
savings and projected costs for every model in the pricing catalog.

Use "-" (or no argument) to read stdin. Several files are analyzed
concurrently and reported in argument order.

Examples:
  # Full report for a file
  tokenscope analyze notes.txt

  # Several files as CSV, one row per file and model
  tokenscope analyze a.txt b.txt --format csv

  # One model only
  tokenscope analyze notes.txt --model anthropic/claude-sonnet-3.5

  # Re-run whenever the file changes
  tokenscope analyze draft.txt --watch`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFlags.format, "format", "f", "text", "output format: text, json, csv")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.model, "model", "m", "", "only show this model (provider/model or model)")
	analyzeCmd.Flags().BoolVarP(&analyzeFlags.watch, "watch", "w", false, "re-run the analysis when the file changes")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	format, err := cli.ParseFormat(analyzeFlags.format)
	if err != nil {
		return err
	}
	if analyzeFlags.watch && (len(args) != 1 || args[0] == "-") {
		return cli.NewConfigError("watch", "--watch needs exactly one file path")
	}
	if err := checkStdinOnce(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	a, err := newApp(ctx, cfg, true)
	if err != nil {
		return cli.NewCommandError("analyze", err)
	}
	defer a.Close(context.Background())

	run := func() error {
		reports, err := analyzeFiles(ctx, a.processor, args, cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return writeReports(cmd.OutOrStdout(), format, args, reports, a.processor.Projector(), analyzeFlags.model)
	}

	if err := run(); err != nil {
		return cli.NewCommandError("analyze", err)
	}
	if !analyzeFlags.watch {
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", args[0])
	return cli.NewCommandError("analyze", cli.WatchFile(ctx, args[0], cli.DefaultDebounce, func() {
		if err := run(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "analysis failed: %v\n", err)
		}
	}))
}

// checkStdinOnce rejects argument lists that name stdin more than once.
func checkStdinOnce(paths []string) error {
	seen := false
	for _, p := range paths {
		if p != "-" {
			continue
		}
		if seen {
			return cli.NewConfigError("files", `stdin ("-") can only be read once`)
		}
		seen = true
	}
	return nil
}

// analyzeFiles analyzes every path concurrently and returns the reports in
// argument order. The first failure cancels the rest.
func analyzeFiles(ctx context.Context, p *processing.Processor, paths []string, stdin io.Reader, progressOut io.Writer) ([]*processing.Report, error) {
	reports := make([]*processing.Report, len(paths))

	var progress cli.ProgressReporter
	if len(paths) > 1 {
		progress = cli.NewProgressReporter(progressOut)
		progress.Start(int64(len(paths)))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			text, err := readInput(path, stdin)
			if err != nil {
				return err
			}
			report, err := p.Analyze(ctx, text)
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(path), err)
			}
			reports[i] = report
			if progress != nil {
				progress.Increment()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if progress != nil {
			progress.Error(err)
		}
		return nil, err
	}
	if progress != nil {
		progress.Finish()
	}
	return reports, nil
}

// fileReport pairs a report with the file it came from.
type fileReport struct {
	File   string `json:"file"`
	Report any    `json:"report"`
}

// fileTable prefixes every row of each file's table with the file name.
type fileTable struct {
	files  []string
	tables []cli.Table
}

func (t fileTable) Header() []string {
	if len(t.tables) == 0 {
		return []string{"file"}
	}
	return append([]string{"file"}, t.tables[0].Header()...)
}

func (t fileTable) Rows() [][]string {
	var rows [][]string
	for i, table := range t.tables {
		for _, row := range table.Rows() {
			rows = append(rows, append([]string{t.files[i]}, row...))
		}
	}
	return rows
}

// writeReports prints one report per path. With model set, only that
// model's projection is printed, priced by projector.
func writeReports(w io.Writer, format cli.OutputFormat, paths []string, reports []*processing.Report, projector *costs.Projector, model string) error {
	provider, name := cli.ParseModelRef(model)

	items := make([]any, len(reports))
	tables := make([]cli.Table, len(reports))
	names := make([]string, len(reports))
	for i, r := range reports {
		names[i] = displayName(paths[i])
		if model == "" {
			items[i] = r
			tables[i] = cli.ReportTable(r)
			continue
		}
		a, err := projector.ProjectModel(r.TextStats.OriginalTokens, provider, name)
		if errors.Is(err, costs.ErrUnknownModel) {
			return cli.NewConfigError("model", fmt.Sprintf("model %q is not in the pricing catalog", model))
		}
		if err != nil {
			return err
		}
		view := cli.NewModelView(r, a)
		items[i] = view
		tables[i] = view
	}

	formatter := cli.NewFormatter(format)
	if len(items) == 1 {
		return formatter.FormatTo(w, items[0])
	}

	switch format {
	case cli.FormatJSON:
		out := make([]fileReport, len(items))
		for i := range items {
			out[i] = fileReport{File: names[i], Report: items[i]}
		}
		return formatter.FormatTo(w, out)
	case cli.FormatCSV:
		return formatter.FormatTo(w, fileTable{files: names, tables: tables})
	default:
		for i := range items {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", names[i])
			if err := formatter.FormatTo(w, items[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
