package harness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/athena/internal/numeral"
)

// SumAdditive reverses an additive rendering: the symbol string is
// greedily matched longest-glyph-first and the matched values summed.
// Longest-first keeps compound glyphs like "CM" from being read as "C"
// followed by an unmatchable "M..." tail.
func SumAdditive(symbols string, sys *numeral.System) (int, error) {
	table := make([]numeral.SymbolEntry, len(sys.SymbolTable))
	copy(table, sys.SymbolTable)
	sort.SliceStable(table, func(i, j int) bool {
		if len(table[i].Glyph) != len(table[j].Glyph) {
			return len(table[i].Glyph) > len(table[j].Glyph)
		}
		return table[i].Value > table[j].Value
	})

	total := 0
	rest := symbols
	for rest != "" {
		matched := false
		for _, entry := range table {
			if entry.Glyph != "" && strings.HasPrefix(rest, entry.Glyph) {
				total += entry.Value
				rest = rest[len(entry.Glyph):]
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("no symbol of %q matches %q", sys.ID, rest)
		}
	}
	return total, nil
}

// RecomposePositional folds a digit sequence back into its value, most
// significant digit first.
func RecomposePositional(digits []int, base int) int {
	total := 0
	for _, d := range digits {
		total = total*base + d
	}
	return total
}
