package compress

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"blinkdeploys/tokenscope/pkg/config"
	"blinkdeploys/tokenscope/pkg/processing/tokens"
)

var (
	// ErrTokenizer wraps a token counter failure. The run is abandoned.
	ErrTokenizer = errors.New("token counting failed")

	// ErrUnknownTechnique is returned by New for an advanced technique name
	// that does not exist.
	ErrUnknownTechnique = errors.New("unknown compression technique")
)

// Options configures a Compressor.
type Options struct {
	// Counter counts tokens before and after compression. Required.
	Counter tokens.Counter

	// Model is the model hint passed to Counter.
	Model string

	// StopwordThreshold is the original token count above which stopword
	// reduction runs. Used as-is: zero means any non-empty text.
	StopwordThreshold int

	// Deduplicate enables repeated-line removal.
	Deduplicate bool

	// Advanced names the optional phrase-table passes to run. They run in
	// pipeline order whatever the order here.
	Advanced []string
}

// Result is the outcome of one compression run.
type Result struct {
	OriginalTokens      int      `json:"original_tokens"`
	CompressedTokens    int      `json:"compressed_tokens"`
	ReductionPercentage float64  `json:"reduction_percentage"`
	TechniquesApplied   []string `json:"compression_techniques_applied"`
	CompressedText      string   `json:"compressed_text"`
}

// Compressor runs the compression pipeline. It holds no per-run state and
// is safe for concurrent use.
type Compressor struct {
	counter     tokens.Counter
	model       string
	threshold   int
	deduplicate bool
	passes      []Transform
	logger      *slog.Logger
}

// New validates opts and returns a Compressor.
func New(opts Options) (*Compressor, error) {
	if opts.Counter == nil {
		return nil, errors.New("compressor requires a token counter")
	}
	if opts.StopwordThreshold < 0 {
		return nil, fmt.Errorf("stopword threshold must be non-negative, got %d", opts.StopwordThreshold)
	}

	wanted := make(map[string]bool, len(opts.Advanced))
	for _, name := range opts.Advanced {
		wanted[name] = true
	}

	c := &Compressor{
		counter:     opts.Counter,
		model:       opts.Model,
		threshold:   opts.StopwordThreshold,
		deduplicate: opts.Deduplicate,
		logger:      slog.Default().With("component", "compress"),
	}
	for _, t := range advanced {
		if wanted[t.Name] {
			c.passes = append(c.passes, t)
			delete(wanted, t.Name)
		}
	}
	for _, name := range opts.Advanced {
		if wanted[name] {
			return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownTechnique, name, strings.Join(AdvancedTechniques(), ", "))
		}
	}

	return c, nil
}

// NewFromConfig builds a Compressor from the processing configuration.
func NewFromConfig(cfg *config.ProcessingConfig, counter tokens.Counter) (*Compressor, error) {
	return New(Options{
		Counter:           counter,
		Model:             cfg.Tokens.Model,
		StopwordThreshold: cfg.Compression.StopwordThreshold,
		Deduplicate:       cfg.Compression.Deduplicate,
		Advanced:          cfg.Compression.Advanced,
	})
}

// Compress runs the pipeline over text:
//
//  1. whitespace normalization (always)
//  2. punctuation optimization (always)
//  3. code comment removal, when the input looks like code
//  4. deduplication, when enabled
//  5. the configured advanced passes
//  6. stopword reduction, when the original count exceeds the threshold
//
// Tokens are counted before step 1 and after the last step. A counter
// error aborts the run.
func (c *Compressor) Compress(text string) (*Result, error) {
	original, err := c.count(text)
	if err != nil {
		return nil, err
	}

	out := text
	applied := make([]string, 0, 6)
	apply := func(t Transform) {
		out = t.Apply(out)
		applied = append(applied, t.Name)
	}

	apply(Transform{Name: TechniqueWhitespace, Apply: NormalizeWhitespace})
	apply(Transform{Name: TechniquePunctuation, Apply: RemoveRedundantPunctuation})
	if LooksLikeCode(text) {
		apply(Transform{Name: TechniqueCodeComments, Apply: RemoveCodeComments})
	}
	if c.deduplicate {
		apply(Transform{Name: TechniqueDeduplicate, Apply: DeduplicateLines})
	}
	for _, t := range c.passes {
		apply(t)
	}
	if original > c.threshold {
		apply(Transform{Name: TechniqueStopwords, Apply: RemoveStopwords})
	}

	compressed, err := c.count(out)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("text compressed",
		"original_tokens", original,
		"compressed_tokens", compressed,
		"techniques", applied,
	)

	return &Result{
		OriginalTokens:      original,
		CompressedTokens:    compressed,
		ReductionPercentage: Reduction(original, compressed),
		TechniquesApplied:   applied,
		CompressedText:      out,
	}, nil
}

func (c *Compressor) count(text string) (int, error) {
	n, err := c.counter.Count(text, c.model)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTokenizer, err)
	}
	return n, nil
}

// Reduction returns (original-compressed)/original*100, or 0 when original
// is 0. Negative values mean compression inflated the count.
func Reduction(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	return float64(original-compressed) / float64(original) * 100
}
