// Package tokens counts the tokens an LLM tokenizer would produce for a
// piece of text.
//
// Two counters are provided:
//
//   - TiktokenCounter uses OpenAI's BPE encodings (via tiktoken-go) and is
//     exact for OpenAI models. Unknown models fall back to cl100k_base.
//   - SimpleEstimator divides the character count by a model-specific
//     characters-per-token ratio. It needs no tokenizer data.
//
// Either can be wrapped in a CachedCounter, a ristretto-backed memo keyed
// by model and text hash.
//
// # Usage
//
//	cfg := config.GetConfig()
//	counter, err := tokens.NewCounter(&cfg.Processing.Tokens, collector)
//	if err != nil {
//		return err
//	}
//
//	n, err := counter.Count(text, cfg.Processing.Tokens.Model)
//
// Tokenizer failures are returned as *Error.
package tokens
