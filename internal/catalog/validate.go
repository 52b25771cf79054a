package catalog

import (
	"fmt"
	"strings"

	"github.com/roach88/athena/internal/engine"
	"github.com/roach88/athena/internal/numeral"
)

// Validation error codes (E100-E199)
const (
	ErrSystemIDEmpty     = "E101" // system id is required
	ErrNameEmpty         = "E102" // display name is required
	ErrLogicInvalid      = "E103" // unknown logic kind
	ErrBaseInvalid       = "E104" // radix out of range for the logic kind
	ErrSymbolTableEmpty  = "E105" // additive system with no symbol table
	ErrSymbolValue       = "E106" // symbol value below one or empty glyph
	ErrDuplicateSymbol   = "E107" // two table rows share a value
	ErrIncompleteTable   = "E108" // probe found an unrepresentable value
	ErrDuplicateSystemID = "E109" // two systems share an id
)

// DefaultProbeLimit bounds the representability sweep run against
// additive symbol tables. Every value in [1, DefaultProbeLimit] must
// reduce to remainder zero for the table to be accepted.
const DefaultProbeLimit = 200

// ValidationError represents a schema validation error.
type ValidationError struct {
	System  string `json:"system,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.System != "" {
		return fmt.Sprintf("[%s] %s: %s: %s", e.Code, e.System, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a compiled system against the semantic schema rules.
// Returns all errors found (does not fail-fast).
func Validate(sys *numeral.System) []ValidationError {
	var errs []ValidationError

	fail := func(field, code, format string, args ...any) {
		errs = append(errs, ValidationError{
			System:  sys.ID,
			Field:   field,
			Message: fmt.Sprintf(format, args...),
			Code:    code,
		})
	}

	if strings.TrimSpace(sys.ID) == "" {
		fail("id", ErrSystemIDEmpty, "system id is required and must be non-empty")
	}
	if strings.TrimSpace(sys.Name) == "" {
		fail("name", ErrNameEmpty, "name is required and must be non-empty")
	}
	if !sys.Logic.Valid() {
		fail("logic", ErrLogicInvalid, "unknown logic %q, must be %q or %q",
			sys.Logic, numeral.LogicAdditive, numeral.LogicPositional)
	}

	// Positional decomposition divides by the radix; anything below 2
	// would loop forever or emit nonsense digits.
	if sys.Logic == numeral.LogicPositional && sys.Base < 2 {
		fail("base", ErrBaseInvalid, "positional systems require base >= 2, got %d", sys.Base)
	}
	if sys.Logic == numeral.LogicAdditive && sys.Base < 1 {
		fail("base", ErrBaseInvalid, "base must be >= 1, got %d", sys.Base)
	}

	tableSound := true
	seen := make(map[int]bool, len(sys.SymbolTable))
	for i, entry := range sys.SymbolTable {
		if entry.Value < 1 {
			fail(fmt.Sprintf("symbols[%d].value", i), ErrSymbolValue,
				"symbol value must be >= 1, got %d", entry.Value)
			tableSound = false
		}
		if entry.Glyph == "" {
			fail(fmt.Sprintf("symbols[%d].glyph", i), ErrSymbolValue,
				"symbol glyph must be non-empty")
			tableSound = false
		}
		if seen[entry.Value] {
			fail(fmt.Sprintf("symbols[%d].value", i), ErrDuplicateSymbol,
				"duplicate symbol value %d", entry.Value)
			tableSound = false
		}
		seen[entry.Value] = true
	}

	if sys.Logic == numeral.LogicAdditive {
		if len(sys.SymbolTable) == 0 {
			fail("symbols", ErrSymbolTableEmpty,
				"additive systems require a non-empty symbol table")
		} else if tableSound {
			errs = append(errs, probeAdditiveCoverage(sys, DefaultProbeLimit)...)
		}
	}

	return errs
}

// probeAdditiveCoverage runs the greedy reduction over [1, limit] and
// reports the first value the table cannot express. Without a unit
// symbol (or an equivalent gap filler) greedy reduction strands a
// remainder, and it is far better to refuse the catalog at load time
// than to fail a conversion later.
func probeAdditiveCoverage(sys *numeral.System, limit int) []ValidationError {
	for n := 1; n <= limit; n++ {
		if _, err := engine.Convert(n, sys); err != nil {
			return []ValidationError{{
				System: sys.ID,
				Field:  "symbols",
				Message: fmt.Sprintf(
					"value %d is not representable: greedy reduction strands a remainder", n),
				Code: ErrIncompleteTable,
			}}
		}
	}
	return nil
}
