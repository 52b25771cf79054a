package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/athena/internal/numeral"
)

// TraceSnapshot is the canonical-JSON form of a scenario run, written
// to golden files. Canonical serialization keeps the snapshot bytes
// stable under map iteration order.
type TraceSnapshot struct {
	ScenarioName string
	Steps        []StepOutcome
}

// MarshalCanonical serializes the snapshot with sorted keys and
// ASCII-safe escaping, the exact byte form stored in golden files.
func (s *TraceSnapshot) MarshalCanonical() ([]byte, error) {
	return numeral.MarshalCanonical(s.toCanonicalMap())
}

// toCanonicalMap lowers the snapshot into the value shapes
// numeral.MarshalCanonical accepts.
func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	steps := make([]any, len(s.Steps))
	for i, step := range s.Steps {
		m := map[string]any{
			"number": step.Number,
			"system": step.System,
			"trace":  step.Trace,
		}
		if step.Error != "" {
			m["error"] = step.Error
		} else {
			m["result"] = step.Result
			if step.Digits != nil {
				m["digits"] = step.Digits
			}
			if step.NoZero {
				m["no_zero"] = true
			}
		}
		steps[i] = m
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"steps":         steps,
	}
}

// RunWithGolden executes a scenario and compares its trace snapshot
// against testdata/golden/{scenario.Name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	snapshot := TraceSnapshot{ScenarioName: scenario.Name, Steps: result.Steps}
	data, err := snapshot.MarshalCanonical()
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return result, nil
}
