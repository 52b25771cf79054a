package engine

import (
	"fmt"

	"github.com/roach88/athena/internal/numeral"
)

// Registry resolves system ids to compiled schemas. *catalog.Registry
// satisfies it; tests substitute small fakes.
type Registry interface {
	Lookup(id string) (*numeral.System, bool)
}

// Engine converts numbers under any system its registry can resolve.
type Engine struct {
	reg Registry
}

// New returns an Engine backed by reg.
func New(reg Registry) *Engine {
	return &Engine{reg: reg}
}

// Convert resolves systemID and converts n under it. Unknown ids are a
// SYSTEM_NOT_FOUND error; everything else behaves as Convert.
func (e *Engine) Convert(n int, systemID string) (*numeral.Result, error) {
	sys, ok := e.reg.Lookup(systemID)
	if !ok {
		return nil, NewNotFoundError(systemID)
	}
	return Convert(n, sys)
}

// Convert converts n under an already-resolved system. The outcome is a
// pure function of (n, sys): identical inputs yield identical results,
// trace included.
func Convert(n int, sys *numeral.System) (*numeral.Result, error) {
	if n < 0 {
		return nil, NewNegativeInputError(sys.ID, n)
	}
	if n == 0 {
		return convertZero(sys), nil
	}

	switch sys.Logic {
	case numeral.LogicAdditive:
		return convertAdditive(n, sys)
	case numeral.LogicPositional:
		return convertPositional(n, sys)
	default:
		return nil, &Error{
			Code:     ErrCodeSchemaDefect,
			Message:  fmt.Sprintf("unsupported logic %q", sys.Logic),
			SystemID: sys.ID,
			Number:   n,
		}
	}
}

// convertZero handles zero ahead of logic dispatch. Systems with a zero
// symbol answer with it; systems without one get the explicit
// no-zero-concept result rather than an empty string.
func convertZero(sys *numeral.System) *numeral.Result {
	if sys.HasZero() {
		return &numeral.Result{
			SystemID: sys.ID,
			Number:   0,
			Kind:     sys.Logic,
			Symbols:  sys.ZeroSymbol,
			Trace:    []string{"Value is 0, returning zero symbol."},
		}
	}
	return &numeral.Result{
		SystemID: sys.ID,
		Number:   0,
		Kind:     sys.Logic,
		Symbols:  numeral.NoZeroNotation,
		NoZero:   true,
		Trace:    []string{"This system does not have a concept of Zero."},
	}
}
