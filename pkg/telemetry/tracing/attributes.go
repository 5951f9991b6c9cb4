package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys used on tokenscope spans. Custom keys use the
// "tokenscope.*" namespace.
const (
	// Analysis attributes
	AttrAnalysisID = "tokenscope.analysis.id"
	AttrInputBytes = "tokenscope.input.bytes"
	AttrModelHint  = "tokenscope.tokenizer.model"

	// Compression attributes
	AttrTokensOriginal   = "tokenscope.tokens.original"
	AttrTokensCompressed = "tokenscope.tokens.compressed"
	AttrReductionPercent = "tokenscope.compression.reduction_percent"
	AttrTechniques       = "tokenscope.compression.techniques"

	// Cost attributes
	AttrModelsPriced      = "tokenscope.cost.models_priced"
	AttrModelsFitting     = "tokenscope.cost.models_fitting"
	AttrCheapestModel     = "tokenscope.cost.cheapest_model"
	AttrMostExpensive     = "tokenscope.cost.most_expensive_model"
	AttrCheapestTotalCost = "tokenscope.cost.cheapest_total_1k"

	// Error attributes
	AttrErrorType    = "tokenscope.error.type"
	AttrErrorMessage = "error.message"
)

// SetAnalysisAttributes sets the attributes known when an analysis starts.
func SetAnalysisAttributes(span trace.Span, analysisID, modelHint string, inputBytes int) {
	span.SetAttributes(
		attribute.String(AttrAnalysisID, analysisID),
		attribute.String(AttrModelHint, modelHint),
		attribute.Int(AttrInputBytes, inputBytes),
	)
}

// SetCompressionAttributes records the outcome of the compression pipeline.
//
// Example:
//
//	SetCompressionAttributes(span, 1500, 1320, 12.0, res.TechniquesApplied)
func SetCompressionAttributes(span trace.Span, original, compressed int, reduction float64, techniques []string) {
	span.SetAttributes(
		attribute.Int(AttrTokensOriginal, original),
		attribute.Int(AttrTokensCompressed, compressed),
		attribute.Float64(AttrReductionPercent, reduction),
		attribute.StringSlice(AttrTechniques, techniques),
	)
}

// SetSelectionAttributes records the cost projection and model selection.
func SetSelectionAttributes(span trace.Span, priced, fitting int, cheapest, mostExpensive, cheapestTotal string) {
	span.SetAttributes(
		attribute.Int(AttrModelsPriced, priced),
		attribute.Int(AttrModelsFitting, fitting),
		attribute.String(AttrCheapestModel, cheapest),
		attribute.String(AttrMostExpensive, mostExpensive),
		attribute.String(AttrCheapestTotalCost, cheapestTotal),
	)
}

// SetErrorAttributes records a classified error on the span and marks it
// failed.
//
// Example:
//
//	SetErrorAttributes(span, err, "tokenizer_error")
func SetErrorAttributes(span trace.Span, err error, errorType string) {
	if err == nil {
		return
	}
	span.SetAttributes(attribute.String(AttrErrorType, errorType))
	SetError(span, err)
	SetStatus(span, err)
}

// AddEvent adds a named event with attributes to the span.
func AddEvent(span trace.Span, name string, attrs ...attribute.KeyValue) {
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
