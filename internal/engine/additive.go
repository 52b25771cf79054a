package engine

import (
	"fmt"
	"strings"

	"github.com/roach88/athena/internal/numeral"
)

// convertAdditive reduces n against the symbol table, largest value
// first, appending one glyph per subtraction. Subtractive pairs (IV,
// CM, ...) need no special casing: they are ordinary table rows and the
// descending sort slots them between the plain symbols.
func convertAdditive(n int, sys *numeral.System) (*numeral.Result, error) {
	var out strings.Builder
	trace := make([]string, 0, 8)

	remaining := n
	for _, entry := range sys.SortedSymbols() {
		if entry.Value <= 0 {
			// Sorted descending, so every later entry is also
			// non-positive and greedy reduction would never terminate.
			return nil, &Error{
				Code:     ErrCodeSchemaDefect,
				Message:  fmt.Sprintf("symbol %q has non-positive value %d", entry.Glyph, entry.Value),
				SystemID: sys.ID,
				Number:   n,
			}
		}
		for remaining >= entry.Value {
			remaining -= entry.Value
			out.WriteString(entry.Glyph)
			trace = append(trace, fmt.Sprintf("Add %s (%d). Remaining: %d", entry.Glyph, entry.Value, remaining))
		}
	}

	if remaining != 0 {
		return nil, NewStrandedRemainderError(sys.ID, n, remaining)
	}

	return &numeral.Result{
		SystemID: sys.ID,
		Number:   n,
		Kind:     numeral.LogicAdditive,
		Symbols:  out.String(),
		Trace:    trace,
	}, nil
}
