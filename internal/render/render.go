// Package render turns conversion results into display text. Every
// digitRenderer branch lives here; the engine produces plain symbol
// strings and digit slices and never knows how they are drawn.
package render

import (
	"strconv"
	"strings"

	"github.com/roach88/athena/internal/numeral"
)

// Renderer tags recognized by Glyphs. A system declares one through its
// DigitRenderer field; anything else falls back to decimal digit text.
const (
	RendererMayan     = "mayan"
	RendererCuneiform = "cuneiform"
)

// Text formats a result as a single line: additive conversions and zero
// short-circuits show the symbol string, positional conversions join
// their digit values. Mayan digit sequences are bracketed and
// comma-separated, every other positional renderer joins with a dash.
func Text(result *numeral.Result, sys *numeral.System) string {
	if !result.Positional() {
		return result.Symbols
	}

	parts := make([]string, len(result.Digits))
	for i, d := range result.Digits {
		parts[i] = strconv.Itoa(d)
	}
	if sys.DigitRenderer == RendererMayan {
		return "[" + strings.Join(parts, ",") + "]"
	}
	return strings.Join(parts, "-")
}

// Glyphs renders one positional digit in the given renderer's notation.
//
// Mayan digits are dots (ones) followed by bars (fives); a zero digit is
// the shell glyph Θ. Cuneiform digits are tens wedges then ones wedges;
// a zero digit is the explicit gap word. Unknown renderers return the
// decimal digit.
func Glyphs(digit int, renderer string) string {
	switch renderer {
	case RendererMayan:
		return mayanGlyph(digit)
	case RendererCuneiform:
		return cuneiformGlyph(digit)
	default:
		return strconv.Itoa(digit)
	}
}

func mayanGlyph(digit int) string {
	if digit == 0 {
		return "Θ"
	}

	dots := digit % 5
	bars := digit / 5

	var b strings.Builder
	b.WriteString(strings.Repeat("•", dots))
	if dots > 0 && bars > 0 {
		b.WriteString(" ")
	}
	b.WriteString(strings.Repeat("―", bars))
	return b.String()
}

func cuneiformGlyph(digit int) string {
	if digit == 0 {
		return "space"
	}

	tens := digit / 10
	ones := digit % 10

	var b strings.Builder
	b.WriteString(strings.Repeat("<", tens))
	b.WriteString(strings.Repeat("Y", ones))
	return b.String()
}
