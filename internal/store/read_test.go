package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPuzzle_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadPuzzle(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestReadRecentAttempts_NewestFirst(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.WritePuzzle(ctx, createTestPuzzle("puzzle-1", "roman", 12), testTime)
	require.NoError(t, err)

	first := NewAttempt("puzzle-1", "10", false, testTime)
	second := NewAttempt("puzzle-1", "11", false, testTime.Add(time.Minute))
	third := NewAttempt("puzzle-1", "12", true, testTime.Add(2*time.Minute))
	for _, a := range []Attempt{first, second, third} {
		require.NoError(t, s.WriteAttempt(ctx, a))
	}

	records, err := s.ReadRecentAttempts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, third.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
	assert.Equal(t, first.ID, records[2].ID)

	// Puzzle context travels with each row.
	assert.Equal(t, "roman", records[0].SystemID)
	assert.Equal(t, "Convert the number 12 into Roman.", records[0].Question)
	assert.True(t, records[0].Correct)
	assert.Equal(t, testTime.Add(2*time.Minute), records[0].CreatedAt)
}

func TestReadRecentAttempts_LimitApplies(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.WritePuzzle(ctx, createTestPuzzle("puzzle-1", "roman", 12), testTime)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		a := NewAttempt("puzzle-1", "12", true, testTime.Add(time.Duration(i)*time.Second))
		require.NoError(t, s.WriteAttempt(ctx, a))
	}

	records, err := s.ReadRecentAttempts(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, testTime.Add(4*time.Second), records[0].CreatedAt)
}

func TestReadRecentAttempts_EmptyLogIsEmptySlice(t *testing.T) {
	s := createTestStore(t)

	records, err := s.ReadRecentAttempts(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Len(t, records, 0)
}

func TestReadSystemStats_GroupsBySystem(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.WritePuzzle(ctx, createTestPuzzle("puzzle-r", "roman", 12), testTime)
	require.NoError(t, err)
	_, err = s.WritePuzzle(ctx, createTestPuzzle("puzzle-b", "binary", 10), testTime)
	require.NoError(t, err)

	attempts := []Attempt{
		NewAttempt("puzzle-r", "12", true, testTime),
		NewAttempt("puzzle-r", "13", false, testTime.Add(time.Second)),
		NewAttempt("puzzle-r", "12", true, testTime.Add(2*time.Second)),
		NewAttempt("puzzle-b", "9", false, testTime.Add(3*time.Second)),
	}
	for _, a := range attempts {
		require.NoError(t, s.WriteAttempt(ctx, a))
	}

	stats, err := s.ReadSystemStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ordered by system id.
	assert.Equal(t, SystemStats{SystemID: "binary", Attempted: 1, Correct: 0}, stats[0])
	assert.Equal(t, SystemStats{SystemID: "roman", Attempted: 3, Correct: 2}, stats[1])
}

func TestReadSystemStats_EmptyLogIsEmptySlice(t *testing.T) {
	s := createTestStore(t)

	stats, err := s.ReadSystemStats(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Len(t, stats, 0)
}

func TestReadPuzzleAttempts_OldestFirst(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.WritePuzzle(ctx, createTestPuzzle("puzzle-1", "roman", 12), testTime)
	require.NoError(t, err)
	_, err = s.WritePuzzle(ctx, createTestPuzzle("puzzle-2", "roman", 7), testTime)
	require.NoError(t, err)

	mine := NewAttempt("puzzle-1", "11", false, testTime)
	later := NewAttempt("puzzle-1", "12", true, testTime.Add(time.Minute))
	other := NewAttempt("puzzle-2", "7", true, testTime)
	for _, a := range []Attempt{later, mine, other} {
		require.NoError(t, s.WriteAttempt(ctx, a))
	}

	attempts, err := s.ReadPuzzleAttempts(ctx, "puzzle-1")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, mine.ID, attempts[0].ID)
	assert.Equal(t, later.ID, attempts[1].ID)
}
