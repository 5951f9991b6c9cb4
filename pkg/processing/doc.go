// Package processing assembles tokenscope analysis reports.
//
// A Processor runs the compression pipeline once, projects costs for every
// catalog model against the original token count and selects the cheapest
// and most expensive models that fit the text:
//
//	p, err := processing.NewFromConfig(&cfg.Processing, counter, cat,
//		processing.WithRecorder(collector),
//		processing.WithTracer(tracer),
//	)
//	report, err := p.Analyze(ctx, text)
//
// # Errors
//
//   - ErrEmptyInput: the text is empty or whitespace only
//   - ErrTokenizer: the token counter failed (wraps the cause)
//   - ErrNoModelFits: the text exceeds every context window
//
// No partial report is returned on error.
//
// # Sub-packages
//
//   - tokens: token counting (tiktoken or a character estimate) with caching
//   - compress: the text compression pipeline
//   - costs: per-model cost projection
package processing
