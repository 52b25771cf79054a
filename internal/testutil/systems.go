// Package testutil provides hand-built numeral systems for tests that
// need real schemas without loading the CUE catalog. Engine tests in
// particular cannot import the catalog package, since the catalog
// validates schemas by probing the engine.
//
// Every constructor returns a fresh value, so tests may mutate their
// copy freely.
package testutil

import "github.com/roach88/athena/internal/numeral"

// Roman returns the standard thirteen-symbol subtractive table.
func Roman() *numeral.System {
	return &numeral.System{
		ID:    "roman",
		Name:  "Roman",
		Base:  10,
		Logic: numeral.LogicAdditive,
		SymbolTable: []numeral.SymbolEntry{
			{Value: 1000, Glyph: "M"},
			{Value: 900, Glyph: "CM"},
			{Value: 500, Glyph: "D"},
			{Value: 400, Glyph: "CD"},
			{Value: 100, Glyph: "C"},
			{Value: 90, Glyph: "XC"},
			{Value: 50, Glyph: "L"},
			{Value: 40, Glyph: "XL"},
			{Value: 10, Glyph: "X"},
			{Value: 9, Glyph: "IX"},
			{Value: 5, Glyph: "V"},
			{Value: 4, Glyph: "IV"},
			{Value: 1, Glyph: "I"},
		},
	}
}

// Mayan returns a base-20 positional system with a zero glyph and the
// mayan digit renderer.
func Mayan() *numeral.System {
	return &numeral.System{
		ID:            "mayan",
		Name:          "Mayan",
		Base:          20,
		Logic:         numeral.LogicPositional,
		ZeroSymbol:    "Θ",
		Layout:        "vertical",
		DigitRenderer: "mayan",
	}
}

// Babylonian returns a base-60 positional system. Its zero is the
// scribal empty space, not a digit glyph.
func Babylonian() *numeral.System {
	return &numeral.System{
		ID:            "babylonian",
		Name:          "Babylonian",
		Base:          60,
		Logic:         numeral.LogicPositional,
		ZeroSymbol:    "Empty Space",
		DigitRenderer: "cuneiform",
	}
}

// Binary returns the smallest useful positional system.
func Binary() *numeral.System {
	return &numeral.System{
		ID:         "binary",
		Name:       "Binary",
		Base:       2,
		Logic:      numeral.LogicPositional,
		ZeroSymbol: "0",
	}
}

// AllSystems returns one of each fixture, in catalog order.
func AllSystems() []*numeral.System {
	return []*numeral.System{Roman(), Mayan(), Babylonian(), Binary()}
}
