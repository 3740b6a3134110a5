package session

import (
	"testing"

	"github.com/minewise/pitpixie/internal/core"
	"github.com/stretchr/testify/assert"
)

// fixedCounter charges one token per turn side, making budgets easy to read.
type fixedCounter struct{}

func (fixedCounter) Count(string) int { return 1 }

func makeTurns(n int) []core.Turn {
	turns := make([]core.Turn, n)
	for i := range turns {
		turns[i] = core.Turn{Question: "q", Answer: "a"}
	}
	return turns
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name        string
		turns       []core.Turn
		maxTurns    int
		tokenBudget int
		wantLen     int
	}{
		{name: "no bounds keeps everything", turns: makeTurns(5), wantLen: 5},
		{name: "max turns trims from the front", turns: makeTurns(5), maxTurns: 3, wantLen: 3},
		{name: "max turns larger than history is a no-op", turns: makeTurns(2), maxTurns: 10, wantLen: 2},
		// each turn costs 2 tokens under fixedCounter
		{name: "token budget trims oldest first", turns: makeTurns(5), tokenBudget: 4, wantLen: 2},
		{name: "most recent turn survives a tiny budget", turns: makeTurns(5), tokenBudget: 1, wantLen: 1},
		{name: "both bounds apply", turns: makeTurns(10), maxTurns: 4, tokenBudget: 4, wantLen: 2},
		{name: "empty history", turns: nil, maxTurns: 3, tokenBudget: 10, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := window(tt.turns, tt.maxTurns, tt.tokenBudget, fixedCounter{})
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestWindow_KeepsMostRecent(t *testing.T) {
	turns := []core.Turn{
		{Question: "old", Answer: "old"},
		{Question: "new", Answer: "new"},
	}
	got := window(turns, 1, 0, fixedCounter{})
	assert.Equal(t, []core.Turn{{Question: "new", Answer: "new"}}, got)
}

func TestApproxCounter(t *testing.T) {
	c := approxCounter{}
	assert.Greater(t, c.Count("a reasonably sized sentence"), 1)
	assert.Equal(t, 1, c.Count(""))
}
