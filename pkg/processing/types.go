package processing

import (
	"time"

	"blinkdeploys/tokenscope/pkg/processing/compress"
	"blinkdeploys/tokenscope/pkg/processing/costs"

	"github.com/shopspring/decimal"
)

// Report is the result of one analysis. It is built once per request and
// never persisted.
type Report struct {
	// ID uniquely identifies the analysis (UUIDv4).
	ID string `json:"id"`

	// Timestamp is when the analysis finished, in UTC.
	Timestamp time.Time `json:"timestamp"`

	// TextStats describes the raw input.
	TextStats TextStats `json:"original_text_stats"`

	// Compression is the outcome of the compression pipeline.
	Compression *compress.Result `json:"compression_result"`

	// CostAnalysis holds one projection per catalog model, in catalog
	// order, against the original token count.
	CostAnalysis []costs.CostAnalysis `json:"cost_analysis"`

	// CheapestModel is the fitting model with the lowest 1K-output total.
	CheapestModel ModelSummary `json:"cheapest_model"`

	// MostExpensiveModel is the fitting model with the highest 1K-output
	// total.
	MostExpensiveModel ModelSummary `json:"most_expensive_model"`

	// CompressionStrategies describes the available techniques.
	CompressionStrategies []string `json:"compression_strategies"`
}

// TextStats are the raw-text statistics of a report.
type TextStats struct {
	// Characters counts Unicode code points.
	Characters int `json:"characters"`

	// Words counts whitespace-separated fields.
	Words int `json:"words"`

	// Lines counts newline-separated segments, including a final segment
	// without a trailing newline.
	Lines int `json:"lines"`

	// OriginalTokens is the token count of the raw text.
	OriginalTokens int `json:"original_tokens"`

	// ReadingTimeMinutes is Words / WordsPerMinute rounded to one decimal.
	ReadingTimeMinutes float64 `json:"estimated_reading_time_minutes"`
}

// ModelSummary names a selected model and its projected totals.
type ModelSummary struct {
	Model             string          `json:"llm_name"`
	Provider          string          `json:"provider"`
	InputCost         decimal.Decimal `json:"input_cost"`
	TotalCost1KOutput decimal.Decimal `json:"total_cost_1k_output"`
	TotalCost5KOutput decimal.Decimal `json:"total_cost_5k_output"`
}

func summarize(a costs.CostAnalysis) ModelSummary {
	return ModelSummary{
		Model:             a.Model,
		Provider:          a.Provider,
		InputCost:         a.InputCost,
		TotalCost1KOutput: a.TotalCost1KOutput,
		TotalCost5KOutput: a.TotalCost5KOutput,
	}
}

// strategies is the static list attached to every report.
var strategies = []string{
	"Whitespace normalization: collapse repeated spaces and blank lines",
	"Punctuation optimization: drop spaces before punctuation and repeated marks",
	"Code comment removal: strip //, # and /* */ comments from code-like input",
	"Deduplication: drop repeated lines (opt-in)",
	"Filler phrase removal: shorten wordy phrases such as \"in order to\" (opt-in)",
	"Redundant pair collapsing: reduce pairs such as \"each and every\" (opt-in)",
	"Abbreviation substitution: replace common phrases and technical terms with abbreviations (opt-in)",
	"Contraction conversion: \"do not\" becomes \"don't\" (opt-in)",
	"Number word conversion: spelled-out numbers become digits (opt-in)",
	"Stopword reduction: remove common stopwords from large documents",
	"Semantic compression: summarization with a language model (future, not implemented)",
}

// CompressionStrategies returns the strategy descriptions attached to
// every report.
func CompressionStrategies() []string {
	return append([]string(nil), strategies...)
}
