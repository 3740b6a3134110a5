package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minewise/pitpixie/internal/core"
)

// TurnsRepo is the transcript store: completed turns with their cited
// references, keyed by session.
type TurnsRepo struct {
	db *sql.DB
}

func NewTurnsRepo(db *sql.DB) *TurnsRepo {
	return &TurnsRepo{db: db}
}

type StoredTurn struct {
	ID         int64
	SessionID  string
	Question   string
	Answer     string
	References []string
	CreatedAt  time.Time
}

func (r *TurnsRepo) SaveTurn(ctx context.Context, sessionID string, turn core.Turn, references []string) error {
	refsJSON, err := json.Marshal(references)
	if err != nil {
		return fmt.Errorf("marshal references: %w", err)
	}
	// Empty reference sets store as empty string to save space
	refsStr := string(refsJSON)
	if refsStr == "null" || refsStr == "[]" {
		refsStr = ""
	}

	query := `INSERT INTO turns (session_id, question, answer, refs) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, sessionID, turn.Question, turn.Answer, refsStr); err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

// Recent returns the last 'limit' turns of a session in chronological order.
func (r *TurnsRepo) Recent(ctx context.Context, sessionID string, limit int) ([]StoredTurn, error) {
	query := `SELECT id, session_id, question, answer, refs, created_at
		FROM turns WHERE session_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var turns []StoredTurn
	for rows.Next() {
		var turn StoredTurn
		var refsStr sql.NullString

		if err := rows.Scan(&turn.ID, &turn.SessionID, &turn.Question, &turn.Answer, &refsStr, &turn.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}

		if refsStr.Valid && refsStr.String != "" {
			if err := json.Unmarshal([]byte(refsStr.String), &turn.References); err != nil {
				return nil, fmt.Errorf("unmarshal references: %w", err)
			}
		}

		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Rows arrived newest first; flip back to chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return turns, nil
}
