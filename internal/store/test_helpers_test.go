package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/athena/internal/puzzle"
)

// createTestStore creates a file-backed store under a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestPuzzle creates a puzzle with minimal required fields. The id
// is caller-chosen, not content-addressed; integrity tests build sealed
// puzzles through the generator instead.
func createTestPuzzle(id, systemID string, target int) *puzzle.Puzzle {
	return &puzzle.Puzzle{
		ID:            id,
		SystemID:      systemID,
		Kind:          puzzle.KindConversion,
		Question:      fmt.Sprintf("Convert the number %d into Roman.", target),
		Target:        target,
		AnswerDisplay: "XII",
		Hint:          "Remember, this is a Base-10 system.",
		CatalogHash:   "test-catalog-hash",
	}
}

var testTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
