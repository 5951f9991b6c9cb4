package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidEntry is returned when a pricing entry violates the catalog
// invariants (empty names, negative prices, non-positive context window).
var ErrInvalidEntry = errors.New("invalid pricing entry")

// ErrDuplicateEntry is returned when two entries share a provider and model.
var ErrDuplicateEntry = errors.New("duplicate pricing entry")

// PricingEntry is the price of one model. Prices are USD per one million
// tokens.
type PricingEntry struct {
	// Provider is the vendor name (e.g. "OpenAI").
	Provider string `json:"provider"`

	// Model is the model name within the provider (e.g. "GPT-4o").
	Model string `json:"model"`

	// InputPerMillion is the price of one million input tokens.
	InputPerMillion decimal.Decimal `json:"input_per_million"`

	// OutputPerMillion is the price of one million output tokens.
	OutputPerMillion decimal.Decimal `json:"output_per_million"`

	// ContextWindow is the maximum number of input tokens the model accepts.
	ContextWindow int `json:"context_window"`
}

// Validate checks the entry invariants.
func (e PricingEntry) Validate() error {
	switch {
	case e.Provider == "":
		return fmt.Errorf("%w: provider is empty", ErrInvalidEntry)
	case e.Model == "":
		return fmt.Errorf("%w: %s: model is empty", ErrInvalidEntry, e.Provider)
	case e.InputPerMillion.IsNegative():
		return fmt.Errorf("%w: %s/%s: negative input price", ErrInvalidEntry, e.Provider, e.Model)
	case e.OutputPerMillion.IsNegative():
		return fmt.Errorf("%w: %s/%s: negative output price", ErrInvalidEntry, e.Provider, e.Model)
	case e.ContextWindow <= 0:
		return fmt.Errorf("%w: %s/%s: context window must be positive", ErrInvalidEntry, e.Provider, e.Model)
	}
	return nil
}

// ModelPrices is the per-model payload of Tree.
type ModelPrices struct {
	Input   decimal.Decimal `json:"input"`
	Output  decimal.Decimal `json:"output"`
	Context int             `json:"context"`
}

// NamedPrices is one model of a ProviderModels group.
type NamedPrices struct {
	Model string
	ModelPrices
}

// ProviderModels is one provider's models in catalog order.
type ProviderModels struct {
	Provider string
	Models   []NamedPrices
}

// Tree is the catalog grouped as provider -> model -> prices. It marshals
// to a JSON object whose keys keep catalog order.
type Tree []ProviderModels

// Lookup returns the prices of provider/model.
func (t Tree) Lookup(provider, model string) (ModelPrices, bool) {
	for _, p := range t {
		if p.Provider != provider {
			continue
		}
		for _, m := range p.Models {
			if m.Model == model {
				return m.ModelPrices, true
			}
		}
	}
	return ModelPrices{}, false
}

// MarshalJSON implements json.Marshaler.
func (t Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, p.Provider); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, m := range p.Models {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, m.Model); err != nil {
				return nil, err
			}
			prices, err := json.Marshal(m.ModelPrices)
			if err != nil {
				return nil, err
			}
			buf.Write(prices)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	b, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteByte(':')
	return nil
}

// Catalog is an immutable, ordered set of pricing entries.
// It is safe for concurrent use.
type Catalog struct {
	asOf    time.Time
	entries []PricingEntry
	index   map[key]int
}

type key struct {
	provider string
	model    string
}

// New builds a catalog from entries in the given order. Every entry is
// validated and provider/model pairs must be unique.
func New(asOf time.Time, entries ...PricingEntry) (*Catalog, error) {
	c := &Catalog{
		asOf:    asOf,
		entries: make([]PricingEntry, 0, len(entries)),
		index:   make(map[key]int, len(entries)),
	}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		k := key{e.Provider, e.Model}
		if _, dup := c.index[k]; dup {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateEntry, e.Provider, e.Model)
		}
		c.index[k] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// AsOf returns the date the prices were collected.
func (c *Catalog) AsOf() time.Time {
	return c.asOf
}

// Age returns how old the prices are relative to now.
func (c *Catalog) Age(now time.Time) time.Duration {
	if c.asOf.IsZero() {
		return 0
	}
	return now.Sub(c.asOf)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []PricingEntry {
	out := make([]PricingEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds the entry for provider and model.
func (c *Catalog) Lookup(provider, model string) (PricingEntry, bool) {
	i, ok := c.index[key{provider, model}]
	if !ok {
		return PricingEntry{}, false
	}
	return c.entries[i], true
}

// Providers returns the distinct provider names in first-seen order.
func (c *Catalog) Providers() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range c.entries {
		if !seen[e.Provider] {
			seen[e.Provider] = true
			out = append(out, e.Provider)
		}
	}
	return out
}

// Tree groups the entries by provider in catalog order.
func (c *Catalog) Tree() Tree {
	var tree Tree
	pos := make(map[string]int)
	for _, e := range c.entries {
		i, ok := pos[e.Provider]
		if !ok {
			i = len(tree)
			pos[e.Provider] = i
			tree = append(tree, ProviderModels{Provider: e.Provider})
		}
		tree[i].Models = append(tree[i].Models, NamedPrices{
			Model: e.Model,
			ModelPrices: ModelPrices{
				Input:   e.InputPerMillion,
				Output:  e.OutputPerMillion,
				Context: e.ContextWindow,
			},
		})
	}
	return tree
}
