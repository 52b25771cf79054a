package harness

import (
	"errors"
	"fmt"
	"slices"

	"github.com/roach88/athena/internal/catalog"
	"github.com/roach88/athena/internal/engine"
	"github.com/roach88/athena/internal/render"
)

// Run executes a scenario and returns the result. A non-nil error means
// the scenario itself could not be executed (unloadable catalog);
// expectation and assertion failures are reported through Result.Errors
// instead.
func Run(scenario *Scenario) (*Result, error) {
	reg, err := buildCatalog(scenario.Catalog)
	if err != nil {
		return nil, err
	}
	eng := engine.New(reg)

	result := NewResult()
	for i, step := range scenario.Steps {
		outcome := runStep(eng, reg, step.Convert)
		result.Steps = append(result.Steps, outcome)
		checkExpect(result, i, step.Expect, outcome)
	}

	evaluateAssertions(result, scenario, reg)
	return result, nil
}

// buildCatalog resolves the scenario's catalog declaration.
func buildCatalog(decl string) (*catalog.Registry, error) {
	if decl == CatalogBuiltin {
		reg, err := catalog.Builtin()
		if err != nil {
			return nil, fmt.Errorf("load builtin catalog: %w", err)
		}
		return reg, nil
	}

	reg, errs := catalog.LoadSource(decl, catalog.LoadModeFailFast)
	if len(errs) > 0 {
		return nil, fmt.Errorf("load inline catalog: %w", errs[0])
	}
	return reg, nil
}

// runStep performs one conversion and captures its outcome. Engine
// errors become outcome fields rather than aborting the scenario, so a
// step can expect them.
func runStep(eng *engine.Engine, reg *catalog.Registry, c ConvertStep) StepOutcome {
	outcome := StepOutcome{Number: c.Number, System: c.System, Trace: []string{}}

	res, err := eng.Convert(c.Number, c.System)
	if err != nil {
		var engErr *engine.Error
		if errors.As(err, &engErr) {
			outcome.Error = string(engErr.Code)
		} else {
			outcome.Error = err.Error()
		}
		return outcome
	}

	sys, _ := reg.Lookup(c.System)
	outcome.Result = render.Text(res, sys)
	outcome.Digits = res.Digits
	outcome.NoZero = res.NoZero
	outcome.Trace = res.Trace
	return outcome
}

// checkExpect validates one step outcome against its expect clause.
// Steps without a clause still fail the scenario if the conversion
// errored, so a typo in a step never passes silently.
func checkExpect(result *Result, i int, expect *ExpectClause, outcome StepOutcome) {
	if expect == nil {
		if outcome.Error != "" {
			result.AddError(fmt.Sprintf("steps[%d]: conversion failed: %s", i, outcome.Error))
		}
		return
	}

	if expect.Error != "" {
		if outcome.Error != expect.Error {
			result.AddError(fmt.Sprintf("steps[%d]: expected error %q, got %q", i, expect.Error, outcome.Error))
		}
		return
	}
	if outcome.Error != "" {
		result.AddError(fmt.Sprintf("steps[%d]: conversion failed: %s", i, outcome.Error))
		return
	}

	if expect.Result != "" && outcome.Result != expect.Result {
		result.AddError(fmt.Sprintf("steps[%d]: expected result %q, got %q", i, expect.Result, outcome.Result))
	}
	if expect.Digits != nil && !slices.Equal(outcome.Digits, expect.Digits) {
		result.AddError(fmt.Sprintf("steps[%d]: expected digits %v, got %v", i, expect.Digits, outcome.Digits))
	}
	if expect.TraceLen != 0 && len(outcome.Trace) != expect.TraceLen {
		result.AddError(fmt.Sprintf("steps[%d]: expected %d trace lines, got %d", i, expect.TraceLen, len(outcome.Trace)))
	}
	if expect.NoZero != nil && outcome.NoZero != *expect.NoZero {
		result.AddError(fmt.Sprintf("steps[%d]: expected no_zero=%v, got %v", i, *expect.NoZero, outcome.NoZero))
	}
}
