package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/athena/internal/puzzle"
)

// ReadPuzzle retrieves a single puzzle by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadPuzzle(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, system_id, kind, question, target, answer_display, hint, catalog_hash
		FROM puzzles
		WHERE id = ?
	`, id)

	var p puzzle.Puzzle
	var kind string
	if err := row.Scan(&p.ID, &p.SystemID, &kind, &p.Question, &p.Target,
		&p.AnswerDisplay, &p.Hint, &p.CatalogHash); err != nil {
		return nil, err
	}
	p.Kind = puzzle.Kind(kind)

	return &p, nil
}

// ReadRecentAttempts returns the most recent attempts joined with their
// puzzle context, newest first. Ties on created_at break by id COLLATE
// BINARY so identical logs list identically.
//
// Returns an empty slice (not nil) if no attempts exist.
func (s *Store) ReadRecentAttempts(ctx context.Context, limit int) ([]AttemptRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.puzzle_id, p.system_id, p.kind, p.question, a.answer, a.correct, a.created_at
		FROM attempts a
		JOIN puzzles p ON a.puzzle_id = p.id
		ORDER BY a.created_at DESC, a.id COLLATE BINARY DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var records []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var kind string
		var correct int
		var createdNs int64
		if err := rows.Scan(&rec.ID, &rec.PuzzleID, &rec.SystemID, &kind,
			&rec.Question, &rec.Answer, &correct, &createdNs); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.Kind = puzzle.Kind(kind)
		rec.Correct = correct != 0
		rec.CreatedAt = time.Unix(0, createdNs).UTC()
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}

	// Return empty slice instead of nil
	if records == nil {
		records = []AttemptRecord{}
	}

	return records, nil
}

// ReadSystemStats returns per-system attempt totals, ordered by system
// id for stable listings.
//
// Returns an empty slice (not nil) if no attempts exist.
func (s *Store) ReadSystemStats(ctx context.Context) ([]SystemStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.system_id, COUNT(a.id), COALESCE(SUM(a.correct), 0)
		FROM attempts a
		JOIN puzzles p ON a.puzzle_id = p.id
		GROUP BY p.system_id
		ORDER BY p.system_id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query system stats: %w", err)
	}
	defer rows.Close()

	var stats []SystemStats
	for rows.Next() {
		var st SystemStats
		if err := rows.Scan(&st.SystemID, &st.Attempted, &st.Correct); err != nil {
			return nil, fmt.Errorf("scan system stats: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate system stats: %w", err)
	}

	// Return empty slice instead of nil
	if stats == nil {
		stats = []SystemStats{}
	}

	return stats, nil
}

// ReadPuzzleAttempts returns all attempts for one puzzle, oldest first.
//
// Returns an empty slice (not nil) if no attempts exist.
func (s *Store) ReadPuzzleAttempts(ctx context.Context, puzzleID string) ([]Attempt, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, puzzle_id, answer, correct, created_at
		FROM attempts
		WHERE puzzle_id = ?
		ORDER BY created_at ASC, id COLLATE BINARY ASC
	`, puzzleID)
	if err != nil {
		return nil, fmt.Errorf("query puzzle attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var correct int
		var createdNs int64
		if err := rows.Scan(&a.ID, &a.PuzzleID, &a.Answer, &correct, &createdNs); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Correct = correct != 0
		a.CreatedAt = time.Unix(0, createdNs).UTC()
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}

	// Return empty slice instead of nil
	if attempts == nil {
		attempts = []Attempt{}
	}

	return attempts, nil
}
