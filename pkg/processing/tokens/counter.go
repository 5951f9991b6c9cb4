package tokens

import (
	"errors"
	"fmt"
)

// Counter counts the tokens a model's tokenizer would produce for text.
// Implementations are deterministic for a given (text, model) pair, never
// return a negative count, and fall back to a default encoding for models
// they do not recognize. They are safe for concurrent use.
type Counter interface {
	Count(text, model string) (int, error)
}

// CounterFunc adapts a function to the Counter interface.
type CounterFunc func(text, model string) (int, error)

// Count calls f(text, model).
func (f CounterFunc) Count(text, model string) (int, error) {
	return f(text, model)
}

// ErrEncodingUnavailable is wrapped by Error when no tokenizer encoding can
// be loaded, not even the fallback.
var ErrEncodingUnavailable = errors.New("tokenizer encoding unavailable")

// Error reports a tokenizer failure for a model.
type Error struct {
	// Model is the model hint the count was requested for.
	Model string

	// Err is the underlying failure.
	Err error
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("tokenizer for %q: %v", e.Model, e.Err)
}

// Unwrap returns the underlying failure.
func (e *Error) Unwrap() error {
	return e.Err
}
