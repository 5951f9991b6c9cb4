package tokens

import (
	"fmt"

	"blinkdeploys/tokenscope/pkg/config"
)

// Counter types accepted by NewCounter.
const (
	CounterTiktoken = "tiktoken"
	CounterSimple   = "simple"
)

// NewCounter builds the counter named by cfg.Counter, wrapped in a
// CachedCounter when cfg.CacheSize is positive. observer may be nil.
func NewCounter(cfg *config.TokensConfig, observer CacheObserver) (Counter, error) {
	var base Counter

	switch cfg.Counter {
	case CounterTiktoken, "":
		base = NewTiktokenCounter()
	case CounterSimple:
		base = NewSimpleEstimator(cfg)
	default:
		return nil, fmt.Errorf("unknown token counter %q", cfg.Counter)
	}

	if cfg.CacheSize <= 0 {
		return base, nil
	}

	return NewCachedCounter(base, cfg.CacheSize, observer)
}
