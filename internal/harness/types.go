package harness

// StepOutcome records what one conversion step produced.
type StepOutcome struct {
	Number int    `json:"number"`
	System string `json:"system"`

	// Result is the rendered text; empty when the step errored.
	Result string `json:"result,omitempty"`

	// Digits carries the positional digit sequence when applicable.
	Digits []int `json:"digits,omitempty"`

	NoZero bool `json:"no_zero,omitempty"`

	// Error is the engine error code when the conversion failed.
	Error string `json:"error,omitempty"`

	// Trace is the derivation narration, one step per line.
	Trace []string `json:"trace"`
}

// Result is the outcome of running a scenario.
type Result struct {
	// Pass is true when every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Steps holds one outcome per scenario step, in order.
	Steps []StepOutcome `json:"steps"`

	// Errors lists every expectation or assertion failure.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result to accumulate into.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Steps: []StepOutcome{},
	}
}

// AddError records a validation failure and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
