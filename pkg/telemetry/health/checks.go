package health

import (
	"context"
	"errors"
	"fmt"
)

// Sizer is implemented by the pricing catalog.
type Sizer interface {
	Len() int
}

// Counter is implemented by every token counter.
type Counter interface {
	Count(text, model string) (int, error)
}

// probeText is counted by CounterCheck; any working counter returns a
// positive count for it.
const probeText = "tokenscope readiness probe"

// CatalogCheck fails when the pricing catalog has no entries.
func CatalogCheck(c Sizer) CheckFunc {
	return func(ctx context.Context) error {
		if c == nil || c.Len() == 0 {
			return errors.New("pricing catalog is empty")
		}
		return nil
	}
}

// CounterCheck fails when the token counter errors or returns a
// non-positive count for a short probe text.
func CounterCheck(counter Counter, model string) CheckFunc {
	return func(ctx context.Context) error {
		n, err := counter.Count(probeText, model)
		if err != nil {
			return fmt.Errorf("token counter: %w", err)
		}
		if n <= 0 {
			return fmt.Errorf("token counter returned %d tokens for probe text", n)
		}
		return nil
	}
}
