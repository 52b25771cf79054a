package engine

import (
	"fmt"

	"github.com/roach88/athena/internal/numeral"
)

// convertPositional decomposes n into base-b digits, most significant
// place first, narrating each division.
func convertPositional(n int, sys *numeral.System) (*numeral.Result, error) {
	base := sys.Base
	if base < 2 {
		return nil, &Error{
			Code:     ErrCodeSchemaDefect,
			Message:  fmt.Sprintf("positional base must be at least 2, got %d", base),
			SystemID: sys.ID,
			Number:   n,
		}
	}

	// Largest exponent whose place value still fits in n. The guard is
	// written against n/base so place never overflows.
	exp := 0
	place := 1
	for place <= n/base {
		place *= base
		exp++
	}

	trace := make([]string, 0, exp+2)
	trace = append(trace, fmt.Sprintf("Highest power of %d fitting in %d is %d^%d", base, n, base, exp))

	digits := make([]int, 0, exp+1)
	remaining := n
	for i := exp; i >= 0; i-- {
		digit := remaining / place
		remaining %= place
		digits = append(digits, digit)
		trace = append(trace, fmt.Sprintf("Place %d^%d (%d): %d units. Remainder: %d", base, i, place, digit, remaining))
		place /= base
	}

	return &numeral.Result{
		SystemID: sys.ID,
		Number:   n,
		Kind:     numeral.LogicPositional,
		Digits:   digits,
		Trace:    trace,
	}, nil
}
