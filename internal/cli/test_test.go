package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: roman-basics
description: Additive conversions against the builtin catalog.
catalog: builtin
steps:
  - convert:
      number: 12
      system: roman
    expect:
      result: "XII"
  - convert:
      number: 0
      system: roman
    expect:
      result: "N/A"
      no_zero: true
`

const failingScenario = `name: roman-wrong
description: Expects a result the engine never produces.
catalog: builtin
steps:
  - convert:
      number: 12
      system: roman
    expect:
      result: "XIII"
`

// writeScenarioDir writes scenario YAML files into a fresh temp directory.
func writeScenarioDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0644))
	}
	return dir
}

func runTestCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewTestCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTestCommandMissingDirectory(t *testing.T) {
	_, err := runTestCommand(t, "text", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios directory not found")
}

func TestTestCommandEmptyDirectory(t *testing.T) {
	out, err := runTestCommand(t, "text", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTestCommandPassingScenario(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"roman-basics.yaml": passingScenario,
	})

	out, err := runTestCommand(t, "text", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ roman-basics")
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTestCommandFailingScenario(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"roman-wrong.yaml": failingScenario,
	})

	out, err := runTestCommand(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.Contains(t, out, "✗ roman-wrong")
	assert.Contains(t, out, `expected result "XIII", got "XII"`)
	assert.Contains(t, out, "Test Summary: 0 passed, 1 failed, 1 total")
}

func TestTestCommandExpectedErrorCode(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"unknown-system.yaml": `name: unknown-system
description: A conversion against a missing system yields its error code.
catalog: builtin
steps:
  - convert:
      number: 5
      system: nashu
    expect:
      error: SYSTEM_NOT_FOUND
`,
	})

	out, err := runTestCommand(t, "text", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ unknown-system")
}

func TestTestCommandInlineCatalog(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"tally-inline.yaml": `name: tally-inline
description: Inline CUE catalog exercising a custom additive system.
catalog: |
  system: tally: {
    name:  "Tally Marks"
    base:  5
    logic: "additive"
    symbols: [
      {value: 5, glyph: "#"},
      {value: 1, glyph: "|"},
    ]
  }
steps:
  - convert:
      number: 7
      system: tally
    expect:
      result: "#||"
`,
	})

	out, err := runTestCommand(t, "text", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ tally-inline")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTestCommandMalformedScenario(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"no-description.yaml": `name: no-description
catalog: builtin
steps:
  - convert:
      number: 1
      system: roman
`,
	})

	out, err := runTestCommand(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ no-description.yaml")
	assert.Contains(t, out, "Load error:")
	assert.Contains(t, out, "description is required")
}

func TestTestCommandUnloadableCatalog(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"broken-catalog.yaml": `name: broken-catalog
description: Inline catalog that does not compile.
catalog: |
  system: broken: {
    name: "Broken"
steps:
  - convert:
      number: 1
      system: broken
`,
	})

	out, err := runTestCommand(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ broken-catalog")
	assert.Contains(t, out, "Execution error:")
}

func TestTestCommandGoldenUpdateAndCompare(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"roman-basics.yaml": passingScenario,
	})

	// First run regenerates the golden file.
	out, err := runTestCommand(t, "text", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ roman-basics (golden updated)")

	goldenPath := filepath.Join(dir, "golden", "roman-basics.golden")
	data, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scenario_name":"roman-basics"`)
	assert.Contains(t, string(data), `"result":"XII"`)

	// Second run compares against it and passes.
	out, err = runTestCommand(t, "text", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ roman-basics")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTestCommandGoldenMismatch(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"roman-basics.yaml": passingScenario,
	})

	_, err := runTestCommand(t, "text", dir, "--update")
	require.NoError(t, err)

	// Corrupt the golden file so the next comparison fails.
	goldenPath := filepath.Join(dir, "golden", "roman-basics.golden")
	require.NoError(t, os.WriteFile(goldenPath, []byte(`{"scenario_name":"stale"}`), 0644))

	out, err := runTestCommand(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ roman-basics")
	assert.Contains(t, out, "Golden file mismatch (run with --update to regenerate)")
	assert.Contains(t, out, "Test Summary: 0 passed, 1 failed, 1 total")
}

func TestTestCommandFilter(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"roman-basics.yaml": passingScenario,
		"roman-wrong.yaml":  failingScenario,
	})

	// The filter matches scenario file names, so the failing file is
	// never run.
	out, err := runTestCommand(t, "text", dir, "--filter", "roman-b*")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ roman-basics")
	assert.NotContains(t, out, "roman-wrong")
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
}

func TestTestCommandInvalidFilter(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"roman-basics.yaml": passingScenario,
	})

	_, err := runTestCommand(t, "text", dir, "--filter", "[")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestTestCommandJSON(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"roman-basics.yaml": passingScenario,
		"roman-wrong.yaml":  failingScenario,
	})

	out, err := runTestCommand(t, "json", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "error", response.Status)
	require.NotNil(t, response.Error)
	assert.Equal(t, "E_TEST_FAILED", response.Error.Code)
	assert.Equal(t, "1 scenario(s) failed", response.Error.Message)

	data, err := json.Marshal(response.Data)
	require.NoError(t, err)
	var result TestResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Scenarios, 2)
}

func TestTestCommandJSONAllPassing(t *testing.T) {
	dir := writeScenarioDir(t, map[string]string{
		"roman-basics.yaml": passingScenario,
	})

	out, err := runTestCommand(t, "json", dir)
	require.NoError(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Nil(t, response.Error)
}
