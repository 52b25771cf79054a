package numeral

import (
	"fmt"
	"sort"
)

// Logic identifies the conversion routine a system dispatches to.
type Logic string

const (
	// LogicAdditive selects greedy largest-first symbol accumulation.
	LogicAdditive Logic = "additive"
	// LogicPositional selects base-b place-value decomposition.
	LogicPositional Logic = "positional"
)

// Valid reports whether l is one of the known logic kinds.
func (l Logic) Valid() bool {
	return l == LogicAdditive || l == LogicPositional
}

// SymbolEntry is one row of an additive symbol table: an integer value
// and the glyph string emitted for it.
type SymbolEntry struct {
	Value int    `json:"value"`
	Glyph string `json:"glyph"`
}

// System is a compiled numeral-system schema. Instances are built by
// the catalog compiler and treated as immutable afterwards; nothing in
// the engine or the puzzle generator mutates a System.
type System struct {
	// ID is the stable lookup key ("roman", "mayan", ...).
	ID string `json:"id"`

	// Display metadata. Name is required; Region and Description are
	// shown by the CLI and the HTTP surface but carry no semantics.
	Name        string `json:"name"`
	Region      string `json:"region,omitempty"`
	Description string `json:"description,omitempty"`

	// Order fixes the catalog listing position. Ties break by ID.
	Order int `json:"order,omitempty"`

	// Base is the radix. Positional systems decompose against it;
	// additive systems keep it as descriptive metadata only.
	Base int `json:"base"`

	// Logic selects the conversion routine.
	Logic Logic `json:"logic"`

	// SymbolTable drives additive conversion. The catalog compiler
	// stores it sorted by descending Value; the engine re-sorts a copy
	// before reducing so hand-built systems behave identically.
	SymbolTable []SymbolEntry `json:"symbol_table,omitempty"`

	// ZeroSymbol is the representation of the whole number zero. An
	// empty string means the system has no concept of zero.
	ZeroSymbol string `json:"zero_symbol,omitempty"`

	// Layout and DigitRenderer are presentation hints for positional
	// digit sequences ("vertical", "mayan", "cuneiform"). They affect
	// rendering only, never the digit values.
	Layout        string `json:"layout,omitempty"`
	DigitRenderer string `json:"digit_renderer,omitempty"`
}

// HasZero reports whether the system can represent the number zero.
func (s *System) HasZero() bool {
	return s.ZeroSymbol != ""
}

// SortedSymbols returns a copy of the symbol table sorted by descending
// value. Greedy reduction is only correct against this order, so the
// engine always reduces over a sorted copy rather than trusting the
// caller's slice.
func (s *System) SortedSymbols() []SymbolEntry {
	out := make([]SymbolEntry, len(s.SymbolTable))
	copy(out, s.SymbolTable)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

// NoZeroNotation is the placeholder symbol string returned when zero is
// requested from a system that cannot represent it.
const NoZeroNotation = "N/A"

// Result is the outcome of converting one number under one system.
// Exactly one of Symbols/Digits carries the representation: additive
// conversions and zero short-circuits fill Symbols, positional
// conversions fill Digits (most significant first).
type Result struct {
	SystemID string `json:"system_id"`
	Number   int    `json:"number"`
	Kind     Logic  `json:"kind"`

	Symbols string `json:"symbols,omitempty"`
	Digits  []int  `json:"digits,omitempty"`

	// NoZero marks the "no concept of zero" outcome. Symbols holds
	// NoZeroNotation in that case.
	NoZero bool `json:"no_zero,omitempty"`

	// Trace is the ordered derivation narration, one step per entry.
	Trace []string `json:"trace"`
}

// Positional reports whether the result carries a digit sequence.
func (r *Result) Positional() bool {
	return r.Digits != nil
}

func (r *Result) String() string {
	if r.Positional() {
		return fmt.Sprintf("%s(%d) = %v", r.SystemID, r.Number, r.Digits)
	}
	return fmt.Sprintf("%s(%d) = %s", r.SystemID, r.Number, r.Symbols)
}
