package costs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"blinkdeploys/tokenscope/pkg/catalog"
)

const (
	// Precision is the number of decimal places monetary values are
	// rounded to.
	Precision = 6

	// OutputTokens1K and OutputTokens5K are the output sizes costs are
	// projected for.
	OutputTokens1K = 1000
	OutputTokens5K = 5000
)

// ErrUnknownModel is returned by ProjectModel when the catalog has no entry
// for the requested provider and model.
var ErrUnknownModel = errors.New("model not in pricing catalog")

var million = decimal.NewFromInt(1_000_000)

// Projector maps token counts onto catalog prices. It holds no mutable
// state and is safe for concurrent use.
type Projector struct {
	catalog *catalog.Catalog
}

// NewProjector creates a projector over c.
func NewProjector(c *catalog.Catalog) *Projector {
	return &Projector{catalog: c}
}

// Catalog returns the catalog the projector prices against.
func (p *Projector) Catalog() *catalog.Catalog {
	return p.catalog
}

// Project returns one CostAnalysis per catalog entry, in catalog order.
// It panics if tokens is negative.
func (p *Projector) Project(tokens int) []CostAnalysis {
	checkTokens(tokens)

	entries := p.catalog.Entries()
	out := make([]CostAnalysis, len(entries))
	for i, e := range entries {
		out[i] = analyze(tokens, e)
	}
	return out
}

// ProjectModel returns the CostAnalysis of a single catalog entry. Names
// match case-insensitively; an empty provider matches the first entry with
// that model name in catalog order. It panics if tokens is negative.
func (p *Projector) ProjectModel(tokens int, provider, model string) (CostAnalysis, error) {
	checkTokens(tokens)

	if e, ok := p.catalog.Lookup(provider, model); ok {
		return analyze(tokens, e), nil
	}
	for _, e := range p.catalog.Entries() {
		if strings.EqualFold(e.Model, model) && (provider == "" || strings.EqualFold(e.Provider, provider)) {
			return analyze(tokens, e), nil
		}
	}
	if provider == "" {
		return CostAnalysis{}, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}
	return CostAnalysis{}, fmt.Errorf("%w: %s/%s", ErrUnknownModel, provider, model)
}

func checkTokens(tokens int) {
	if tokens < 0 {
		panic(fmt.Sprintf("costs: negative token count %d", tokens))
	}
}

// analyze computes every term at full precision and rounds only the
// values it returns.
func analyze(tokens int, e catalog.PricingEntry) CostAnalysis {
	input := perMillion(tokens, e.InputPerMillion)
	out1k := perMillion(OutputTokens1K, e.OutputPerMillion)
	out5k := perMillion(OutputTokens5K, e.OutputPerMillion)

	return CostAnalysis{
		Model:             e.Model,
		Provider:          e.Provider,
		InputCost:         input.Round(Precision),
		OutputCost1K:      out1k.Round(Precision),
		OutputCost5K:      out5k.Round(Precision),
		TotalCost1KOutput: input.Add(out1k).Round(Precision),
		TotalCost5KOutput: input.Add(out5k).Round(Precision),
		ContextWindow:     e.ContextWindow,
		FitsInContext:     tokens <= e.ContextWindow,
	}
}

// perMillion returns tokens/1,000,000 * price.
func perMillion(tokens int, price decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(tokens)).Mul(price).Div(million)
}
