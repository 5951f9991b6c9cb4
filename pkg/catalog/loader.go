package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"blinkdeploys/tokenscope/pkg/config"
)

// AsOfLayout is the date layout of the as_of field in catalog documents.
const AsOfLayout = "2006-01-02"

// document is the on-disk catalog shape shared by the YAML, TOML and JSON
// sources. Providers and models are lists so declared order survives.
type document struct {
	AsOf      string        `yaml:"as_of" toml:"as_of" json:"as_of"`
	Providers []providerDoc `yaml:"providers" toml:"providers" json:"providers"`
}

type providerDoc struct {
	Name   string     `yaml:"name" toml:"name" json:"name"`
	Models []modelDoc `yaml:"models" toml:"models" json:"models"`
}

type modelDoc struct {
	Name    string  `yaml:"name" toml:"name" json:"name"`
	Input   float64 `yaml:"input" toml:"input" json:"input"`
	Output  float64 `yaml:"output" toml:"output" json:"output"`
	Context int     `yaml:"context" toml:"context" json:"context"`
}

// LoadFile reads a catalog document. The format is chosen by extension:
// .yaml/.yml, .toml or .json.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document in the format named by ext.
func Parse(data []byte, ext string) (*Catalog, error) {
	var doc document

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}

	return doc.catalog()
}

func (d document) catalog() (*Catalog, error) {
	var asOf time.Time
	if d.AsOf != "" {
		t, err := time.Parse(AsOfLayout, d.AsOf)
		if err != nil {
			return nil, fmt.Errorf("invalid as_of %q: %w", d.AsOf, err)
		}
		asOf = t
	}

	var entries []PricingEntry
	for _, p := range d.Providers {
		for _, m := range p.Models {
			entries = append(entries, PricingEntry{
				Provider:         p.Name,
				Model:            m.Name,
				InputPerMillion:  decimal.NewFromFloat(m.Input),
				OutputPerMillion: decimal.NewFromFloat(m.Output),
				ContextWindow:    m.Context,
			})
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog has no models")
	}

	return New(asOf, entries...)
}

// Catalog sources accepted by Open.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceSQLite  = "sqlite"
	SourceGit     = "git"
)

// Open loads the catalog from the named source. An empty source means
// SourceBuiltin.
func Open(ctx context.Context, source, path string) (*Catalog, error) {
	switch source {
	case "", SourceBuiltin:
		return Default(), nil
	case SourceFile:
		return LoadFile(path)
	case SourceSQLite:
		return LoadSQLite(ctx, path)
	case SourceGit:
		return nil, errors.New("the git source needs repository settings; use FromConfig or LoadGit")
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
}

// FromConfig loads the catalog described by cfg, including the git source.
func FromConfig(ctx context.Context, cfg *config.CatalogConfig) (*Catalog, error) {
	if cfg.Source != SourceGit {
		return Open(ctx, cfg.Source, cfg.Path)
	}
	return LoadGit(ctx, GitSource{
		Repository: cfg.Git.Repository,
		Branch:     cfg.Git.Branch,
		Path:       cfg.Path,
		Token:      cfg.Git.Token,
		Timeout:    cfg.Git.Timeout,
	})
}
