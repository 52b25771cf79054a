package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/athena/internal/numeral"
	"github.com/roach88/athena/internal/testutil"
)

func TestConvertPositional_BinaryTenNarratesEveryPlace(t *testing.T) {
	result, err := Convert(10, testutil.Binary())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 1, 0}, result.Digits)
	assert.Equal(t, numeral.LogicPositional, result.Kind)
	assert.Empty(t, result.Symbols)
	assert.Equal(t, []string{
		"Highest power of 2 fitting in 10 is 2^3",
		"Place 2^3 (8): 1 units. Remainder: 2",
		"Place 2^2 (4): 0 units. Remainder: 2",
		"Place 2^1 (2): 1 units. Remainder: 0",
		"Place 2^0 (1): 0 units. Remainder: 0",
	}, result.Trace)
}

func TestConvertPositional_ValueBelowBaseIsSingleDigit(t *testing.T) {
	result, err := Convert(33, testutil.Babylonian())
	require.NoError(t, err)

	assert.Equal(t, []int{33}, result.Digits)
	assert.Equal(t, []string{
		"Highest power of 60 fitting in 33 is 60^0",
		"Place 60^0 (1): 33 units. Remainder: 0",
	}, result.Trace)
}

func TestConvertPositional_KnownValues(t *testing.T) {
	tests := []struct {
		sys  *numeral.System
		n    int
		want []int
	}{
		{testutil.Babylonian(), 1, []int{1}},
		{testutil.Babylonian(), 59, []int{59}},
		{testutil.Babylonian(), 60, []int{1, 0}},
		{testutil.Babylonian(), 65, []int{1, 5}},
		{testutil.Babylonian(), 3661, []int{1, 1, 1}},
		{testutil.Mayan(), 5, []int{5}},
		{testutil.Mayan(), 20, []int{1, 0}},
		{testutil.Mayan(), 44, []int{2, 4}},
		{testutil.Mayan(), 400, []int{1, 0, 0}},
		{testutil.Binary(), 1, []int{1}},
		{testutil.Binary(), 7, []int{1, 1, 1}},
		{testutil.Binary(), 255, []int{1, 1, 1, 1, 1, 1, 1, 1}},
		{testutil.Binary(), 256, []int{1, 0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		result, err := Convert(tt.n, tt.sys)
		require.NoError(t, err, "system=%s n=%d", tt.sys.ID, tt.n)
		assert.Equal(t, tt.want, result.Digits, "system=%s n=%d", tt.sys.ID, tt.n)
	}
}

func TestConvertPositional_DigitsRecomposeToInput(t *testing.T) {
	for _, sys := range []*numeral.System{testutil.Binary(), testutil.Mayan(), testutil.Babylonian()} {
		for n := 1; n <= 500; n++ {
			result, err := Convert(n, sys)
			require.NoError(t, err, "system=%s n=%d", sys.ID, n)

			recomposed := 0
			for _, digit := range result.Digits {
				require.GreaterOrEqual(t, digit, 0, "system=%s n=%d", sys.ID, n)
				require.Less(t, digit, sys.Base, "system=%s n=%d", sys.ID, n)
				recomposed = recomposed*sys.Base + digit
			}
			assert.Equal(t, n, recomposed, "system=%s n=%d", sys.ID, n)
		}
	}
}

func TestConvertPositional_NoLeadingZeroDigit(t *testing.T) {
	for _, sys := range []*numeral.System{testutil.Binary(), testutil.Mayan(), testutil.Babylonian()} {
		for n := 1; n <= 500; n++ {
			result, err := Convert(n, sys)
			require.NoError(t, err)
			require.NotEmpty(t, result.Digits)
			assert.NotEqual(t, 0, result.Digits[0], "system=%s n=%d", sys.ID, n)
		}
	}
}

func TestConvertPositional_BaseBelowTwo(t *testing.T) {
	sys := &numeral.System{ID: "unary", Name: "Unary", Base: 1, Logic: numeral.LogicPositional}

	_, err := Convert(5, sys)
	require.Error(t, err)
	assert.True(t, IsSchemaDefect(err))
}

func TestConvertPositional_TraceLengthMatchesPlaces(t *testing.T) {
	// One preamble line plus one line per digit.
	for _, tt := range []struct {
		n    int
		want int
	}{
		{1, 2},
		{19, 2},
		{20, 3},
		{399, 3},
		{400, 4},
	} {
		result, err := Convert(tt.n, testutil.Mayan())
		require.NoError(t, err)
		assert.Len(t, result.Trace, tt.want, "n=%d", tt.n)
		assert.Len(t, result.Digits, tt.want-1, "n=%d", tt.n)
	}
}
