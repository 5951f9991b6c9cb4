package tokens

import (
	"errors"
	"sync/atomic"
	"testing"

	"blinkdeploys/tokenscope/pkg/config"
)

type countingObserver struct {
	hits, misses atomic.Int64
}

func (o *countingObserver) ObserveCacheLookup(hit bool) {
	if hit {
		o.hits.Add(1)
	} else {
		o.misses.Add(1)
	}
}

func TestCachedCounter_Memoizes(t *testing.T) {
	var calls atomic.Int64
	base := CounterFunc(func(text, model string) (int, error) {
		calls.Add(1)
		return len(text), nil
	})

	obs := &countingObserver{}
	c, err := NewCachedCounter(base, 100, obs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	n, err := c.Count("hello", "gpt-4")
	if err != nil || n != 5 {
		t.Fatalf("expected 5, got %d (%v)", n, err)
	}
	c.Wait()

	n, err = c.Count("hello", "gpt-4")
	if err != nil || n != 5 {
		t.Fatalf("expected 5, got %d (%v)", n, err)
	}

	if calls.Load() != 1 {
		t.Errorf("expected 1 underlying call, got %d", calls.Load())
	}
	if obs.hits.Load() != 1 || obs.misses.Load() != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", obs.hits.Load(), obs.misses.Load())
	}
}

func TestCachedCounter_KeyIncludesModel(t *testing.T) {
	base := CounterFunc(func(text, model string) (int, error) {
		if model == "big" {
			return 100, nil
		}
		return 1, nil
	})

	c, err := NewCachedCounter(base, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if n, _ := c.Count("same", "small"); n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
	c.Wait()

	if n, _ := c.Count("same", "big"); n != 100 {
		t.Errorf("cache must not be shared across models, got %d", n)
	}
}

func TestCachedCounter_ErrorsNotCached(t *testing.T) {
	fail := true
	var calls int
	base := CounterFunc(func(text, model string) (int, error) {
		calls++
		if fail {
			return 0, &Error{Model: model, Err: ErrEncodingUnavailable}
		}
		return 7, nil
	})

	c, err := NewCachedCounter(base, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	_, err = c.Count("text", "m")
	var terr *Error
	if !errors.As(err, &terr) || !errors.Is(err, ErrEncodingUnavailable) {
		t.Fatalf("expected tokenizer error, got %v", err)
	}
	c.Wait()

	fail = false
	n, err := c.Count("text", "m")
	if err != nil || n != 7 {
		t.Errorf("expected recomputed count 7, got %d (%v)", n, err)
	}
	if calls != 2 {
		t.Errorf("expected 2 underlying calls, got %d", calls)
	}
}

func TestNewCachedCounter_InvalidSize(t *testing.T) {
	if _, err := NewCachedCounter(CounterFunc(nil), 0, nil); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestNewCounter(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.TokensConfig
		wantType  string
		wantError bool
	}{
		{
			name:     "simple without cache",
			cfg:      config.TokensConfig{Counter: "simple"},
			wantType: "*tokens.SimpleEstimator",
		},
		{
			name:     "simple with cache",
			cfg:      config.TokensConfig{Counter: "simple", CacheSize: 10},
			wantType: "*tokens.CachedCounter",
		},
		{
			name:     "tiktoken without cache",
			cfg:      config.TokensConfig{Counter: "tiktoken"},
			wantType: "*tokens.TiktokenCounter",
		},
		{
			name:     "empty counter means tiktoken",
			cfg:      config.TokensConfig{},
			wantType: "*tokens.TiktokenCounter",
		},
		{
			name:      "unknown counter",
			cfg:       config.TokensConfig{Counter: "sentencepiece"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter, err := NewCounter(&tt.cfg, nil)
			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got string
			switch counter.(type) {
			case *SimpleEstimator:
				got = "*tokens.SimpleEstimator"
			case *CachedCounter:
				got = "*tokens.CachedCounter"
			case *TiktokenCounter:
				got = "*tokens.TiktokenCounter"
			}
			if got != tt.wantType {
				t.Errorf("expected %s, got %T", tt.wantType, counter)
			}
		})
	}
}

func TestError(t *testing.T) {
	err := &Error{Model: "gpt-9", Err: ErrEncodingUnavailable}

	if err.Error() != `tokenizer for "gpt-9": tokenizer encoding unavailable` {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, ErrEncodingUnavailable) {
		t.Error("expected Unwrap to expose the cause")
	}
}
