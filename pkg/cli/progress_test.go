package cli

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleProgress(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(4)
	progress.Increment()
	assert.Contains(t, buf.String(), "(1/4)")

	progress.Finish()
	assert.Contains(t, buf.String(), "(4/4)")
	assert.Contains(t, buf.String(), "100.0%")
}

func TestSimpleProgress_IncrementCapsAtTotal(t *testing.T) {
	p := NewProgressReporter(&bytes.Buffer{}).(*SimpleProgress)

	p.Start(1)
	p.Increment()
	p.Increment()
	assert.Equal(t, int64(1), p.current)
}

func TestSimpleProgress_ZeroTotal(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Start(0)
	progress.Increment()
	assert.Empty(t, buf.String())
}

func TestSimpleProgress_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	progress := NewProgressReporter(buf)

	progress.Error(errors.New("read failed"))
	assert.Contains(t, buf.String(), "Error: read failed")
}

func TestSimpleProgress_Concurrent(t *testing.T) {
	p := NewProgressReporter(&bytes.Buffer{}).(*SimpleProgress)
	p.Start(50)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Increment()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), p.current)
}
