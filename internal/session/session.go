package session

import (
	"context"
	"fmt"

	"github.com/minewise/pitpixie/internal/core"
	"github.com/minewise/pitpixie/pkg/log"
	"github.com/minewise/pitpixie/pkg/retry"
)

const DefaultTopK = 10

// TurnStore persists completed turns. Persistence failures never fail a turn.
type TurnStore interface {
	SaveTurn(ctx context.Context, sessionID string, turn core.Turn, references []string) error
}

// Progress wraps a long-running model call with user feedback. The returned
// stop function joins the feedback worker and restores the output line; it
// must be called on every exit path.
type Progress interface {
	Start(label string) (stop func())
}

type Options struct {
	SessionID   string
	Variant     Variant
	TopK        int
	MaxTurns    int
	TokenBudget int
	Store       TurnStore
	Progress    Progress
	Retrier     *retry.Retrier
}

// Session owns the running conversation history and drives one query turn:
// retrieve, compose, invoke, append. History is append-only with the session
// as its single writer, and only reflects fully completed turns.
type Session struct {
	retriever core.Retriever
	provider  core.ChatProvider
	opts      Options
	counter   tokenCounter
	history   []core.Turn
}

func New(retriever core.Retriever, provider core.ChatProvider, opts Options) *Session {
	if opts.TopK <= 0 {
		opts.TopK = DefaultTopK
	}
	if opts.SessionID == "" {
		opts.SessionID = "interactive"
	}
	if opts.Retrier == nil {
		opts.Retrier = retry.NewDefaultRetrier()
	}
	var counter tokenCounter
	if opts.TokenBudget > 0 {
		counter = newTokenCounter()
	}
	return &Session{
		retriever: retriever,
		provider:  provider,
		opts:      opts,
		counter:   counter,
	}
}

// Ask runs one full turn and returns the answer.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	answer, _, err := s.AskWithSources(ctx, question)
	return answer, err
}

// AskWithSources runs one full turn and additionally returns the grounding
// pairs the answer was based on, for reference extraction.
func (s *Session) AskWithSources(ctx context.Context, question string) (string, []core.GroundingPair, error) {
	logger := log.FromCtx(ctx)

	var pairs []core.GroundingPair
	err := s.opts.Retrier.Do(ctx, func() error {
		var retrieveErr error
		pairs, retrieveErr = s.retriever.Retrieve(ctx, question, s.opts.TopK)
		return retrieveErr
	})
	if err != nil {
		return "", nil, fmt.Errorf("retrieve grounding: %w", err)
	}
	logger.Debug().Int("pairs", len(pairs)).Msg("retrieved grounding context")

	windowed := window(s.history, s.opts.MaxTurns, s.opts.TokenBudget, s.counter)
	prompt := Compose(question, pairs, windowed, s.opts.Variant)

	answer, err := s.invoke(ctx, prompt)
	if err != nil {
		return "", nil, fmt.Errorf("model invocation: %w", err)
	}

	s.history = append(s.history, core.Turn{Question: question, Answer: answer})

	if s.opts.Store != nil {
		if err := s.opts.Store.SaveTurn(ctx, s.opts.SessionID, core.Turn{Question: question, Answer: answer}, References(pairs)); err != nil {
			logger.Warn().Err(err).Msg("failed to persist turn")
		}
	}

	return answer, pairs, nil
}

func (s *Session) invoke(ctx context.Context, prompt string) (string, error) {
	if s.opts.Progress != nil {
		stop := s.opts.Progress.Start("Thinking")
		defer stop()
	}

	var answer string
	err := s.opts.Retrier.Do(ctx, func() error {
		var invokeErr error
		answer, invokeErr = s.provider.Complete(ctx, prompt)
		return invokeErr
	})
	return answer, err
}

// History returns a copy of the completed turns, oldest first.
func (s *Session) History() []core.Turn {
	out := make([]core.Turn, len(s.history))
	copy(out, s.history)
	return out
}
