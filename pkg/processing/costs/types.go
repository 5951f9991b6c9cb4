package costs

import "github.com/shopspring/decimal"

// CostAnalysis is the projected cost of one model for one token count.
// Monetary values are USD rounded to Precision decimal places.
type CostAnalysis struct {
	// Model is the model name from the catalog.
	Model string `json:"llm_name"`

	// Provider is the vendor name from the catalog.
	Provider string `json:"provider"`

	// InputCost is the cost of sending the tokens as input.
	InputCost decimal.Decimal `json:"input_cost"`

	// OutputCost1K is the cost of 1,000 output tokens.
	OutputCost1K decimal.Decimal `json:"output_cost_1k"`

	// OutputCost5K is the cost of 5,000 output tokens.
	OutputCost5K decimal.Decimal `json:"output_cost_5k"`

	// TotalCost1KOutput is InputCost plus OutputCost1K.
	TotalCost1KOutput decimal.Decimal `json:"total_cost_1k_output"`

	// TotalCost5KOutput is InputCost plus OutputCost5K.
	TotalCost5KOutput decimal.Decimal `json:"total_cost_5k_output"`

	// ContextWindow is the model's maximum input size in tokens.
	ContextWindow int `json:"context_window"`

	// FitsInContext reports whether the token count is within ContextWindow.
	FitsInContext bool `json:"fits_in_context"`
}
