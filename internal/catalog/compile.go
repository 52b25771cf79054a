package catalog

import (
	"fmt"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/athena/internal/numeral"
)

// CompileSystem parses a CUE value into a numeral.System.
// Uses the CUE SDK's Go API directly (not CLI subprocess).
//
// The CUE value should be the system struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`system: roman: { ... }`)
//	sys, err := CompileSystem(v.LookupPath(cue.ParsePath("system.roman")))
//
// Compilation checks structure only; semantic rules live in Validate.
func CompileSystem(v cue.Value) (*numeral.System, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	sys := &numeral.System{}

	// The system id is the struct label (the path selector).
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		sys.ID = labels[len(labels)-1].String()
	}

	name, err := requiredString(v, "name")
	if err != nil {
		return nil, err
	}
	sys.Name = name

	if sys.Region, err = optionalString(v, "region"); err != nil {
		return nil, err
	}
	if sys.Description, err = optionalString(v, "description"); err != nil {
		return nil, err
	}

	orderVal := v.LookupPath(cue.ParsePath("order"))
	if orderVal.Exists() {
		order, err := orderVal.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		sys.Order = int(order)
	}

	baseVal := v.LookupPath(cue.ParsePath("base"))
	if !baseVal.Exists() {
		return nil, &CompileError{
			Field:   "base",
			Message: "base is required",
			Pos:     v.Pos(),
		}
	}
	base, err := baseVal.Int64()
	if err != nil {
		return nil, formatCUEError(err)
	}
	sys.Base = int(base)

	logicVal := v.LookupPath(cue.ParsePath("logic"))
	if !logicVal.Exists() {
		return nil, &CompileError{
			Field:   "logic",
			Message: "logic is required",
			Pos:     v.Pos(),
		}
	}
	logic, err := logicVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	sys.Logic = numeral.Logic(logic)
	if !sys.Logic.Valid() {
		return nil, &CompileError{
			Field:   "logic",
			Message: fmt.Sprintf("unknown logic %q, must be %q or %q", logic, numeral.LogicAdditive, numeral.LogicPositional),
			Pos:     logicVal.Pos(),
		}
	}

	if sys.Layout, err = optionalString(v, "layout"); err != nil {
		return nil, err
	}
	if sys.DigitRenderer, err = optionalString(v, "digit_renderer"); err != nil {
		return nil, err
	}
	if sys.ZeroSymbol, err = optionalString(v, "zero_symbol"); err != nil {
		return nil, err
	}

	sys.SymbolTable, err = parseSymbols(v)
	if err != nil {
		return nil, err
	}

	// Store the table largest-first so every consumer sees greedy order.
	sys.SymbolTable = sys.SortedSymbols()

	return sys, nil
}

// parseSymbols extracts the symbol table, a list of {value, glyph} rows.
func parseSymbols(v cue.Value) ([]numeral.SymbolEntry, error) {
	symVal := v.LookupPath(cue.ParsePath("symbols"))
	if !symVal.Exists() {
		return nil, nil // table is optional; semantic rules decide if absence is legal
	}

	iter, err := symVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var entries []numeral.SymbolEntry
	for iter.Next() {
		row := iter.Value()

		valueVal := row.LookupPath(cue.ParsePath("value"))
		if !valueVal.Exists() {
			return nil, &CompileError{
				Field:   "symbols",
				Message: "symbol entry requires a value field",
				Pos:     row.Pos(),
			}
		}
		value, err := valueVal.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}

		glyphVal := row.LookupPath(cue.ParsePath("glyph"))
		if !glyphVal.Exists() {
			return nil, &CompileError{
				Field:   "symbols",
				Message: "symbol entry requires a glyph field",
				Pos:     row.Pos(),
			}
		}
		glyph, err := glyphVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}

		entries = append(entries, numeral.SymbolEntry{Value: int(value), Glyph: glyph})
	}

	return entries, nil
}

func requiredString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", &CompileError{
			Field:   field,
			Message: field + " is required",
			Pos:     v.Pos(),
		}
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

func optionalString(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", nil
	}
	s, err := fv.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := cueerrors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
