package session

import (
	"github.com/minewise/pitpixie/internal/core"
	"github.com/pkoukk/tiktoken-go"
)

type tokenCounter interface {
	Count(text string) int
}

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

func (c tiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// approxCounter is the fallback when the BPE vocabulary cannot be loaded
// (offline runs). Four bytes per token is close enough for a window cap.
type approxCounter struct{}

func (approxCounter) Count(text string) int {
	return len(text)/4 + 1
}

func newTokenCounter() tokenCounter {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return approxCounter{}
	}
	return tiktokenCounter{enc: enc}
}

// window bounds the history that gets serialized into a prompt: at most
// maxTurns turns, trimmed from the front until the token budget holds.
// The most recent turn always survives. Zero disables the respective bound.
func window(turns []core.Turn, maxTurns, tokenBudget int, counter tokenCounter) []core.Turn {
	if maxTurns > 0 && len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}
	if tokenBudget <= 0 || len(turns) == 0 {
		return turns
	}

	total := 0
	costs := make([]int, len(turns))
	for i, turn := range turns {
		costs[i] = counter.Count(turn.Question) + counter.Count(turn.Answer)
		total += costs[i]
	}

	start := 0
	for total > tokenBudget && start < len(turns)-1 {
		total -= costs[start]
		start++
	}
	return turns[start:]
}
