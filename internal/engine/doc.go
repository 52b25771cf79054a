// Package engine converts nonnegative integers into numeral-system
// representations and narrates how each answer was derived.
//
// The engine is schema-driven: it never knows about Roman or Mayan
// numerals, only about the two logic kinds a numeral.System can
// declare. Adding a system to the catalog never touches this package.
//
// DISPATCH:
//
//  1. Negative input is rejected before any system logic runs.
//  2. Zero short-circuits: systems with a zero symbol answer with it,
//     systems without one report that zero is not a concept they have.
//  3. Additive systems reduce greedily against the symbol table,
//     largest value first.
//  4. Positional systems decompose into base-b digits, most
//     significant first.
//
// GUARANTEES:
//
// Determinism: every conversion is a pure function of (number, system).
// The same inputs always produce byte-identical symbols, digits and
// trace. Nothing here reads clocks, randomness or globals.
//
// Totality: for any input the engine either returns a Result or a
// typed *Error. An additive table that strands a remainder is reported
// as a schema defect carrying the leftover value, never silently
// truncated.
//
// The trace is narration for humans. Callers must treat the symbols
// and digits as the answer and never parse the trace.
package engine
