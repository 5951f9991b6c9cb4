package catalog

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// BuiltinAsOf is the date the built-in prices were collected.
var BuiltinAsOf = time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

type row struct {
	model   string
	input   string
	output  string
	context int
}

type providerRows struct {
	name   string
	models []row
}

var builtin = []providerRows{
	{"OpenAI", []row{
		{"GPT-5", "3.00", "12.00", 200000},
		{"GPT-4.5", "75.00", "150.00", 128000},
		{"GPT-4o", "5.00", "20.00", 128000},
		{"GPT-4.1", "12.00", "48.00", 128000},
		{"GPT-3.5-Turbo", "3.00", "6.00", 16000},
		{"o3", "10.00", "40.00", 128000},
		{"o4-mini", "1.00", "4.00", 128000},
	}},
	{"Anthropic", []row{
		{"Claude-Opus-4.1", "15.00", "75.00", 200000},
		{"Claude-Sonnet-4.5", "3.00", "15.00", 200000},
		{"Claude-Sonnet-4", "3.00", "15.00", 200000},
		{"Claude-Sonnet-3.7", "3.00", "15.00", 200000},
		{"Claude-Sonnet-3.5", "3.00", "15.00", 200000},
		{"Claude-Haiku-4.5", "0.80", "4.00", 200000},
		{"Claude-Haiku-3.5", "0.80", "4.00", 200000},
		{"Claude-Haiku-3", "0.25", "1.25", 200000},
	}},
	{"Google", []row{
		{"Gemini-2.5-Pro", "2.50", "10.00", 1000000},
		{"Gemini-2.5-Flash", "0.15", "0.60", 1000000},
		{"Gemini-1.5-Pro-128k", "1.25", "5.00", 128000},
		{"Gemini-1.5-Pro-1M", "2.50", "10.00", 1000000},
		{"Gemini-1.5-Flash", "0.075", "0.30", 1000000},
	}},
	{"xAI", []row{
		{"Grok-3", "2.00", "10.00", 128000},
		{"Grok-4", "5.00", "15.00", 128000},
		{"Grok-Mini", "0.50", "1.50", 32000},
	}},
	{"DeepSeek", []row{
		{"DeepSeek-V3.2", "0.27", "1.10", 128000},
		{"DeepSeek-Chat", "0.14", "0.28", 64000},
	}},
	{"Mistral", []row{
		{"Mistral-Large", "2.00", "6.00", 128000},
		{"Mistral-Medium", "2.70", "8.10", 32000},
	}},
	{"Meta", []row{
		{"Llama-3.1-405B", "0.80", "0.80", 128000},
		{"Llama-3.1-70B", "0.35", "0.40", 128000},
		{"Llama-4-70B", "0.50", "0.60", 200000},
	}},
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. The same instance is returned on
// every call.
func Default() *Catalog {
	defaultOnce.Do(func() {
		var entries []PricingEntry
		for _, p := range builtin {
			for _, r := range p.models {
				entries = append(entries, PricingEntry{
					Provider:         p.name,
					Model:            r.model,
					InputPerMillion:  decimal.RequireFromString(r.input),
					OutputPerMillion: decimal.RequireFromString(r.output),
					ContextWindow:    r.context,
				})
			}
		}

		c, err := New(BuiltinAsOf, entries...)
		if err != nil {
			panic("catalog: invalid built-in table: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
