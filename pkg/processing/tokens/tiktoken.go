package tokens

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// FallbackEncoding is used for models tiktoken does not recognize.
const FallbackEncoding = "cl100k_base"

// TiktokenCounter counts tokens with OpenAI's BPE encodings. Encodings are
// resolved once per model and reused.
type TiktokenCounter struct {
	mu        sync.RWMutex
	encodings map[string]*tiktoken.Tiktoken
	logger    *slog.Logger
}

// NewTiktokenCounter creates a counter. Encoding data is loaded lazily on
// the first count for each model.
func NewTiktokenCounter() *TiktokenCounter {
	return &TiktokenCounter{
		encodings: make(map[string]*tiktoken.Tiktoken),
		logger:    slog.Default().With("component", "tokens.tiktoken"),
	}
}

// Count returns the exact number of tokens in text for model.
func (c *TiktokenCounter) Count(text, model string) (int, error) {
	if text == "" {
		return 0, nil
	}

	enc, err := c.encoding(model)
	if err != nil {
		return 0, err
	}

	return len(enc.Encode(text, nil, nil)), nil
}

func (c *TiktokenCounter) encoding(model string) (*tiktoken.Tiktoken, error) {
	c.mu.RLock()
	enc, ok := c.encodings[model]
	c.mu.RUnlock()
	if ok {
		return enc, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if enc, ok := c.encodings[model]; ok {
		return enc, nil
	}

	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		c.logger.Debug("no encoding for model, using fallback",
			"model", model,
			"encoding", FallbackEncoding,
		)
		enc, err = tiktoken.GetEncoding(FallbackEncoding)
		if err != nil {
			return nil, &Error{Model: model, Err: errors.Join(ErrEncodingUnavailable, err)}
		}
	}

	c.encodings[model] = enc
	return enc, nil
}
