package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/athena/internal/catalog"
)

// evaluateAssertions checks scenario-level assertions against the
// collected step outcomes.
func evaluateAssertions(result *Result, scenario *Scenario, reg *catalog.Registry) {
	for i, a := range scenario.Assertions {
		switch a.Type {
		case AssertTraceContains:
			if !traceContains(result.Steps, a.Text) {
				result.AddError(fmt.Sprintf("assertions[%d]: no trace line contains %q", i, a.Text))
			}
		case AssertResultRoundtrip:
			assertRoundtrip(result, i, reg)
		}
	}
}

// traceContains reports whether any step's trace has a line containing
// text.
func traceContains(steps []StepOutcome, text string) bool {
	for _, step := range steps {
		for _, line := range step.Trace {
			if strings.Contains(line, text) {
				return true
			}
		}
	}
	return false
}

// assertRoundtrip re-derives each successful step's input from its
// output and reports mismatches. Steps that errored or hit the no-zero
// path carry no representation to reverse, so they are skipped.
func assertRoundtrip(result *Result, idx int, reg *catalog.Registry) {
	for i, step := range result.Steps {
		if step.Error != "" || step.NoZero {
			continue
		}
		sys, ok := reg.Lookup(step.System)
		if !ok {
			continue
		}

		if step.Number == 0 {
			if step.Result != sys.ZeroSymbol {
				result.AddError(fmt.Sprintf(
					"assertions[%d]: steps[%d]: zero rendered %q, want %q", idx, i, step.Result, sys.ZeroSymbol))
			}
			continue
		}

		var got int
		if step.Digits != nil {
			got = RecomposePositional(step.Digits, sys.Base)
		} else {
			sum, err := SumAdditive(step.Result, sys)
			if err != nil {
				result.AddError(fmt.Sprintf("assertions[%d]: steps[%d]: %v", idx, i, err))
				continue
			}
			got = sum
		}
		if got != step.Number {
			result.AddError(fmt.Sprintf(
				"assertions[%d]: steps[%d]: round-trip produced %d, want %d", idx, i, got, step.Number))
		}
	}
}
