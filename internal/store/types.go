package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/roach88/athena/internal/puzzle"
)

// Attempt is one submitted answer against a stored puzzle.
type Attempt struct {
	// ID is a UUIDv7: time-ordered, so lexicographic id order matches
	// submission order within a timestamp.
	ID string `json:"id"`

	PuzzleID string `json:"puzzle_id"`

	// Answer is the raw submitted text, kept verbatim for review.
	Answer string `json:"answer"`

	Correct   bool      `json:"correct"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAttempt builds an attempt record for one submitted answer.
func NewAttempt(puzzleID, answer string, correct bool, now time.Time) Attempt {
	return Attempt{
		ID:        uuid.Must(uuid.NewV7()).String(),
		PuzzleID:  puzzleID,
		Answer:    answer,
		Correct:   correct,
		CreatedAt: now,
	}
}

// AttemptRecord is one history row: an attempt joined with enough puzzle
// context to display it.
type AttemptRecord struct {
	ID        string      `json:"id"`
	PuzzleID  string      `json:"puzzle_id"`
	SystemID  string      `json:"system_id"`
	Kind      puzzle.Kind `json:"kind"`
	Question  string      `json:"question"`
	Answer    string      `json:"answer"`
	Correct   bool        `json:"correct"`
	CreatedAt time.Time   `json:"created_at"`
}

// SystemStats aggregates attempts per system.
type SystemStats struct {
	SystemID  string `json:"system_id"`
	Attempted int    `json:"attempted"`
	Correct   int    `json:"correct"`
}
