package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one conformance test: a catalog, conversion steps, and
// assertions over the results.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description"`

	// Catalog selects the system set: the literal "builtin" for the
	// embedded catalog, or inline CUE source declaring systems.
	Catalog string `yaml:"catalog"`

	// Steps are executed in order against a fresh engine.
	Steps []Step `yaml:"steps"`

	// Assertions validate the collected step outcomes.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one conversion with an optional expectation.
type Step struct {
	Convert ConvertStep   `yaml:"convert"`
	Expect  *ExpectClause `yaml:"expect,omitempty"`
}

// ConvertStep names the input of a conversion.
type ConvertStep struct {
	Number int    `yaml:"number"`
	System string `yaml:"system"`
}

// ExpectClause is a subset match over a step outcome: only the set
// fields are validated.
type ExpectClause struct {
	// Result is the rendered text ("XII", "[2,4]", "N/A").
	Result string `yaml:"result,omitempty"`

	// Digits is the positional digit sequence, most significant first.
	Digits []int `yaml:"digits,omitempty"`

	// TraceLen is the expected number of trace lines.
	TraceLen int `yaml:"trace_len,omitempty"`

	// NoZero expects the "no concept of zero" outcome.
	NoZero *bool `yaml:"no_zero,omitempty"`

	// Error is the expected engine error code, e.g. "SYSTEM_NOT_FOUND".
	// When set, the step must fail and the other fields stay empty.
	Error string `yaml:"error,omitempty"`
}

// Assertion validates the scenario as a whole.
type Assertion struct {
	// Type is one of trace_contains or result_roundtrip.
	Type string `yaml:"type"`

	// Text is the substring searched for across every step's trace
	// (trace_contains only).
	Text string `yaml:"text,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains   = "trace_contains"
	AssertResultRoundtrip = "result_roundtrip"
)

// CatalogBuiltin selects the embedded catalog.
const CatalogBuiltin = "builtin"

// LoadScenario reads and parses a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML. Unknown fields are rejected so a
// typo like "assertion:" fails loudly instead of silently skipping
// checks.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and that
// assertion types are known.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Catalog == "" {
		return fmt.Errorf("catalog is required (%q or inline CUE)", CatalogBuiltin)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if step.Convert.System == "" {
			return fmt.Errorf("steps[%d].convert: system is required", i)
		}
		if step.Expect != nil && step.Expect.Error != "" {
			if step.Expect.Result != "" || step.Expect.Digits != nil ||
				step.Expect.TraceLen != 0 || step.Expect.NoZero != nil {
				return fmt.Errorf("steps[%d].expect: error excludes the other expect fields", i)
			}
		}
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertTraceContains:
			if a.Text == "" {
				return fmt.Errorf("assertions[%d]: text is required for trace_contains", i)
			}
		case AssertResultRoundtrip:
		case "":
			return fmt.Errorf("assertions[%d]: type is required", i)
		default:
			return fmt.Errorf("assertions[%d]: unknown assertion type %q", i, a.Type)
		}
	}
	return nil
}
