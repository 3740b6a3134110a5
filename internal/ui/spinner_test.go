package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// lockedBuffer guards against the worker writing while the test asserts.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_RendersAndClears(t *testing.T) {
	buf := &lockedBuffer{}
	stop := NewSpinner(buf).Start("Thinking")
	time.Sleep(50 * time.Millisecond)
	stop()

	out := buf.String()
	assert.Contains(t, out, "Thinking")
	// line is cleared after the worker joins
	assert.True(t, strings.HasSuffix(out, "\r"))
	assert.Contains(t, out, strings.Repeat(" ", len("Thinking")+4))
}

func TestSpinner_StopIsIdempotent(t *testing.T) {
	buf := &lockedBuffer{}
	stop := NewSpinner(buf).Start("Thinking")
	stop()

	cleared := buf.String()
	stop()
	assert.Equal(t, cleared, buf.String())
}

func TestSpinner_StopReturnsPromptly(t *testing.T) {
	buf := &lockedBuffer{}
	stop := NewSpinner(buf).Start("Thinking")

	start := time.Now()
	stop()
	assert.Less(t, time.Since(start), time.Second)
}
