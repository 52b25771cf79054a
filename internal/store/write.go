package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/athena/internal/puzzle"
)

// WritePuzzle inserts a puzzle record into the store.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - the id is
// content-addressed, so re-saving a regenerated puzzle is a no-op.
// Returns whether a new row was inserted.
func (s *Store) WritePuzzle(ctx context.Context, p *puzzle.Puzzle, createdAt time.Time) (inserted bool, err error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO puzzles
		(id, system_id, kind, question, target, answer_display, hint, catalog_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		p.ID,
		p.SystemID,
		string(p.Kind),
		p.Question,
		p.Target,
		p.AnswerDisplay,
		p.Hint,
		p.CatalogHash,
		createdAt.UTC().UnixNano(),
	)
	if err != nil {
		return false, fmt.Errorf("write puzzle: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write puzzle: rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// WriteAttempt inserts an attempt record into the store.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored. Other constraint violations (e.g. an unknown
// puzzle_id) still return errors.
func (s *Store) WriteAttempt(ctx context.Context, a Attempt) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attempts
		(id, puzzle_id, answer, correct, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		a.ID,
		a.PuzzleID,
		a.Answer,
		boolToInt(a.Correct),
		a.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("write attempt: %w", err)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
