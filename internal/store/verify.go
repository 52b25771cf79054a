package store

import (
	"context"
	"fmt"

	"github.com/roach88/athena/internal/numeral"
)

// VerifyResult reports the integrity of the stored puzzle log.
type VerifyResult struct {
	Checked    int      `json:"checked"`
	Mismatched []string `json:"mismatched,omitempty"`
}

// Ok reports whether every checked row matched its content id.
func (r VerifyResult) Ok() bool {
	return len(r.Mismatched) == 0
}

// VerifyPuzzles recomputes the content id of every stored puzzle and
// reports rows whose columns no longer hash to their id. A mismatch
// means the row was edited outside the application; the log itself is
// never modified.
//
// The recomputation must use exactly the identity fields the generator
// seals into the id, so this doubles as a drift alarm if the hashing
// rules ever change.
func (s *Store) VerifyPuzzles(ctx context.Context) (VerifyResult, error) {
	var result VerifyResult

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, system_id, kind, question, target, catalog_hash
		FROM puzzles
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return result, fmt.Errorf("verify puzzles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, systemID, kind, question, catalogHash string
		var target int
		if err := rows.Scan(&id, &systemID, &kind, &question, &target, &catalogHash); err != nil {
			return result, fmt.Errorf("verify puzzles: scan: %w", err)
		}

		want, err := numeral.ContentID(numeral.DomainPuzzle, map[string]any{
			"catalog_hash": catalogHash,
			"system_id":    systemID,
			"kind":         kind,
			"target":       target,
			"question":     question,
		})
		if err != nil {
			return result, fmt.Errorf("verify puzzle %s: %w", id, err)
		}

		result.Checked++
		if want != id {
			result.Mismatched = append(result.Mismatched, id)
		}
	}

	if err := rows.Err(); err != nil {
		return result, fmt.Errorf("verify puzzles: iterate: %w", err)
	}

	return result, nil
}
