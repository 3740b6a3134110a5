package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/minewise/pitpixie/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *TurnsRepo {
	t.Helper()
	ctx := context.Background()
	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "pitpixie.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTurnsRepo(db)
}

func TestTurnsRepo_SaveAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.SaveTurn(ctx, "s1", core.Turn{Question: "q1", Answer: "a1"}, []string{"ReportA", "ReportB"}))
	require.NoError(t, repo.SaveTurn(ctx, "s1", core.Turn{Question: "q2", Answer: "a2"}, nil))
	require.NoError(t, repo.SaveTurn(ctx, "other", core.Turn{Question: "qx", Answer: "ax"}, nil))

	turns, err := repo.Recent(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, turns, 2)

	// chronological order, session-scoped
	assert.Equal(t, "q1", turns[0].Question)
	assert.Equal(t, []string{"ReportA", "ReportB"}, turns[0].References)
	assert.Equal(t, "q2", turns[1].Question)
	assert.Nil(t, turns[1].References)
}

func TestTurnsRepo_RecentHonorsLimit(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, q := range []string{"q1", "q2", "q3"} {
		require.NoError(t, repo.SaveTurn(ctx, "s1", core.Turn{Question: q, Answer: "a"}, nil))
	}

	turns, err := repo.Recent(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "q2", turns[0].Question)
	assert.Equal(t, "q3", turns[1].Question)
}

func TestTurnsRepo_RecentEmptySession(t *testing.T) {
	repo := newTestRepo(t)
	turns, err := repo.Recent(context.Background(), "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, turns)
}
