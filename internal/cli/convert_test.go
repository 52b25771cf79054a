package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runConvertCommand executes the convert command and returns its output.
func runConvertCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConvertRomanText(t *testing.T) {
	output, err := runConvertCommand(t, "text", "12", "--system", "roman")
	require.NoError(t, err)

	assert.Contains(t, output, "roman(12) = XII")
	assert.Contains(t, output, "Derivation:")
	assert.Contains(t, output, "Add X (10). Remaining: 2")
	assert.Contains(t, output, "Add I (1). Remaining: 0")
}

func TestConvertRomanJSON(t *testing.T) {
	output, err := runConvertCommand(t, "json", "1987", "--system", "roman")
	require.NoError(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(output), &response))
	assert.Equal(t, "ok", response.Status)

	data, err := json.Marshal(response.Data)
	require.NoError(t, err)
	var out ConvertOutput
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "roman", out.System)
	assert.Equal(t, 1987, out.Number)
	assert.Equal(t, "MCMLXXXVII", out.Result)
	assert.Empty(t, out.Digits)
	assert.False(t, out.NoZero)
	assert.NotEmpty(t, out.Trace)
}

func TestConvertMayanGlyphs(t *testing.T) {
	output, err := runConvertCommand(t, "json", "44", "--system", "mayan")
	require.NoError(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(output), &response))
	require.Equal(t, "ok", response.Status)

	data, err := json.Marshal(response.Data)
	require.NoError(t, err)
	var out ConvertOutput
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "[2,4]", out.Result)
	assert.Equal(t, []int{2, 4}, out.Digits)
	assert.Equal(t, []string{"••", "••••"}, out.Glyphs)
}

func TestConvertBabylonianText(t *testing.T) {
	output, err := runConvertCommand(t, "text", "65", "--system", "babylonian")
	require.NoError(t, err)

	assert.Contains(t, output, "babylonian(65) = 1-5")
	assert.Contains(t, output, "Digits (base 60): 1 5")
	assert.Contains(t, output, "Glyphs:")
	assert.Contains(t, output, "1 -> Y")
	assert.Contains(t, output, "5 -> YYYYY")
	assert.Contains(t, output, "Highest power of 60 fitting in 65 is 60^1")
}

func TestConvertZeroNoZeroConcept(t *testing.T) {
	output, err := runConvertCommand(t, "json", "0", "--system", "roman")
	require.NoError(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(output), &response))
	require.Equal(t, "ok", response.Status)

	data, err := json.Marshal(response.Data)
	require.NoError(t, err)
	var out ConvertOutput
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "N/A", out.Result)
	assert.True(t, out.NoZero)
	assert.Contains(t, out.Trace, "This system does not have a concept of Zero.")
}

func TestConvertZeroWithZeroSymbol(t *testing.T) {
	output, err := runConvertCommand(t, "text", "0", "--system", "mayan")
	require.NoError(t, err)

	assert.Contains(t, output, "mayan(0) = Θ")
	assert.Contains(t, output, "Value is 0, returning zero symbol.")
}

func TestConvertUnknownSystem(t *testing.T) {
	output, err := runConvertCommand(t, "text", "12", "--system", "nashu")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, output, "Error [SYSTEM_NOT_FOUND]")
}

func TestConvertUnknownSystemJSONDetails(t *testing.T) {
	output, err := runConvertCommand(t, "json", "12", "--system", "nashu")
	require.Error(t, err)

	var response CLIResponse
	require.NoError(t, json.Unmarshal([]byte(output), &response))
	assert.Equal(t, "error", response.Status)
	require.NotNil(t, response.Error)
	assert.Equal(t, "SYSTEM_NOT_FOUND", response.Error.Code)

	details, err := json.Marshal(response.Error.Details)
	require.NoError(t, err)
	assert.Contains(t, string(details), "roman")
}

func TestConvertNegativeNumber(t *testing.T) {
	output, err := runConvertCommand(t, "text", "--system", "roman", "--", "-4")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, output, "Error [NEGATIVE_INPUT]")
}

func TestConvertNonInteger(t *testing.T) {
	output, err := runConvertCommand(t, "text", "twelve", "--system", "roman")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, output, `not an integer: "twelve"`)
}

func TestConvertMissingSystemFlag(t *testing.T) {
	_, err := runConvertCommand(t, "text", "12")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestConvertCustomCatalog(t *testing.T) {
	dir := writeCatalogDir(t, map[string]string{"tally.cue": tallyCatalog})

	output, err := runConvertCommand(t, "text", "7", "--system", "tally", "--catalog", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "tally(7) = #||")
	assert.Contains(t, output, "Add # (5). Remaining: 2")
}
