package tokens

import (
	"strings"
	"unicode/utf8"

	"blinkdeploys/tokenscope/pkg/config"
)

// SimpleEstimator implements character-based token estimation.
// It uses model-specific characters-per-token ratios to estimate token counts.
// It needs no tokenizer data and is very fast, at the price of accuracy.
type SimpleEstimator struct {
	ratios map[string]float64
}

// NewSimpleEstimator creates a new simple character-based token estimator.
// The ratio map is copied, so later changes to cfg have no effect.
func NewSimpleEstimator(cfg *config.TokensConfig) *SimpleEstimator {
	ratios := make(map[string]float64, len(cfg.Models))
	for k, v := range cfg.Models {
		if v > 0 {
			ratios[k] = v
		}
	}
	return &SimpleEstimator{ratios: ratios}
}

// Count estimates tokens for text using the ratio for model.
// Non-empty text is at least one token.
func (e *SimpleEstimator) Count(text, model string) (int, error) {
	if text == "" {
		return 0, nil
	}

	charCount := utf8.RuneCountInString(text)
	tokens := float64(charCount) / e.charsPerToken(model)
	if tokens < 1.0 {
		return 1, nil
	}

	return int(tokens + 0.5), nil
}

// charsPerToken returns the characters-per-token ratio for a model: an
// exact match, then the longest configured prefix, then "default", then 4.0.
func (e *SimpleEstimator) charsPerToken(model string) float64 {
	if ratio, ok := e.ratios[model]; ok {
		return ratio
	}

	best := ""
	for pattern := range e.ratios {
		if pattern != "default" && strings.HasPrefix(model, pattern) && len(pattern) > len(best) {
			best = pattern
		}
	}
	if best != "" {
		return e.ratios[best]
	}

	if ratio, ok := e.ratios["default"]; ok {
		return ratio
	}

	return config.DefaultTokensCharsPerToken
}
