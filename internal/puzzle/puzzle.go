// Package puzzle generates practice exercises against the catalog and
// checks submitted answers.
package puzzle

import (
	"strconv"
	"strings"

	"github.com/roach88/athena/internal/numeral"
)

// Kind distinguishes the two exercise shapes.
type Kind string

const (
	// KindConversion asks for a decimal value written in the system.
	KindConversion Kind = "conversion"

	// KindSequence shows three rendered terms of an arithmetic sequence
	// and asks for the next one.
	KindSequence Kind = "sequence"
)

// Puzzle is one generated exercise. Target is the ground truth: answer
// checking compares against it, never against AnswerDisplay.
type Puzzle struct {
	// ID is the content-addressed identity of the puzzle. Two
	// generators producing the same question against the same catalog
	// mint the same id, which lets the practice log dedupe replays.
	ID string `json:"id"`

	SystemID string `json:"system_id"`
	Kind     Kind   `json:"kind"`
	Question string `json:"question"`

	// Target is the expected decimal answer.
	Target int `json:"target"`

	// AnswerDisplay is the target rendered in the system's notation,
	// shown after an attempt.
	AnswerDisplay string `json:"answer_display"`

	Hint string `json:"hint"`

	// CatalogHash records which catalog the puzzle was generated
	// against.
	CatalogHash string `json:"catalog_hash"`
}

// seal assigns the content-addressed id from the identity fields.
func (p *Puzzle) seal() error {
	id, err := numeral.ContentID(numeral.DomainPuzzle, map[string]any{
		"catalog_hash": p.CatalogHash,
		"system_id":    p.SystemID,
		"kind":         string(p.Kind),
		"target":       p.Target,
		"question":     p.Question,
	})
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// CheckAnswer reports whether input names the puzzle's target value.
// Input is parsed as a decimal integer after trimming surrounding
// whitespace; anything unparseable is simply incorrect, never an error.
func CheckAnswer(p *Puzzle, input string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return false
	}
	return n == p.Target
}
