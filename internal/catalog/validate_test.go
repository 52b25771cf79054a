package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/athena/internal/numeral"
	"github.com/roach88/athena/internal/testutil"
)

func TestValidateValidSystems(t *testing.T) {
	for _, sys := range testutil.AllSystems() {
		errs := Validate(sys)
		assert.Empty(t, errs, "system %s should validate cleanly", sys.ID)
	}
}

func TestValidateEmptyID(t *testing.T) {
	sys := testutil.Roman()
	sys.ID = "  "

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSystemIDEmpty, errs[0].Code)
	assert.Contains(t, errs[0].Message, "system id is required")
}

func TestValidateEmptyName(t *testing.T) {
	sys := testutil.Roman()
	sys.Name = ""

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrNameEmpty, errs[0].Code)
	assert.Equal(t, "name", errs[0].Field)
}

func TestValidateUnknownLogic(t *testing.T) {
	sys := testutil.Binary()
	sys.Logic = numeral.Logic("quantum")

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrLogicInvalid, errs[0].Code)
	assert.Contains(t, errs[0].Message, `unknown logic "quantum"`)
}

func TestValidatePositionalBaseTooSmall(t *testing.T) {
	sys := testutil.Binary()
	sys.Base = 1

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrBaseInvalid, errs[0].Code)
	assert.Contains(t, errs[0].Message, "base >= 2")
}

func TestValidateAdditiveBaseTooSmall(t *testing.T) {
	sys := testutil.Roman()
	sys.Base = 0

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrBaseInvalid, errs[0].Code)
}

func TestValidateAdditiveEmptySymbolTable(t *testing.T) {
	sys := testutil.Roman()
	sys.SymbolTable = nil

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSymbolTableEmpty, errs[0].Code)
	assert.Equal(t, "symbols", errs[0].Field)
}

func TestValidateSymbolValueBelowOne(t *testing.T) {
	sys := &numeral.System{
		ID:    "bad",
		Name:  "Bad",
		Base:  10,
		Logic: numeral.LogicAdditive,
		SymbolTable: []numeral.SymbolEntry{
			{Value: 1, Glyph: "I"},
			{Value: 0, Glyph: "O"},
		},
	}

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSymbolValue, errs[0].Code)
	assert.Equal(t, "symbols[1].value", errs[0].Field)
}

func TestValidateSymbolEmptyGlyph(t *testing.T) {
	sys := &numeral.System{
		ID:    "bad",
		Name:  "Bad",
		Base:  10,
		Logic: numeral.LogicAdditive,
		SymbolTable: []numeral.SymbolEntry{
			{Value: 5, Glyph: ""},
			{Value: 1, Glyph: "I"},
		},
	}

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSymbolValue, errs[0].Code)
	assert.Equal(t, "symbols[0].glyph", errs[0].Field)
}

func TestValidateDuplicateSymbolValue(t *testing.T) {
	sys := &numeral.System{
		ID:    "bad",
		Name:  "Bad",
		Base:  10,
		Logic: numeral.LogicAdditive,
		SymbolTable: []numeral.SymbolEntry{
			{Value: 5, Glyph: "V"},
			{Value: 5, Glyph: "W"},
			{Value: 1, Glyph: "I"},
		},
	}

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicateSymbol, errs[0].Code)
	assert.Contains(t, errs[0].Message, "duplicate symbol value 5")
}

func TestValidateIncompleteAdditiveTable(t *testing.T) {
	// No unit symbol: greedy reduction of 1 strands a remainder.
	sys := &numeral.System{
		ID:    "fives",
		Name:  "Fives Only",
		Base:  10,
		Logic: numeral.LogicAdditive,
		SymbolTable: []numeral.SymbolEntry{
			{Value: 5, Glyph: "#"},
		},
	}

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrIncompleteTable, errs[0].Code)
	assert.Contains(t, errs[0].Message, "value 1 is not representable")
}

func TestValidateGapInAdditiveTable(t *testing.T) {
	// Several symbols, still no way to express 1.
	sys := &numeral.System{
		ID:    "gapped",
		Name:  "Gapped",
		Base:  10,
		Logic: numeral.LogicAdditive,
		SymbolTable: []numeral.SymbolEntry{
			{Value: 5, Glyph: "#"},
			{Value: 3, Glyph: "^"},
		},
	}

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrIncompleteTable, errs[0].Code)
	assert.Contains(t, errs[0].Message, "value 1 is not representable")
}

func TestValidateProbeSkippedForBrokenTable(t *testing.T) {
	// Structural table errors suppress the probe so the report is not
	// flooded with representability noise for a table already rejected.
	sys := &numeral.System{
		ID:    "bad",
		Name:  "Bad",
		Base:  10,
		Logic: numeral.LogicAdditive,
		SymbolTable: []numeral.SymbolEntry{
			{Value: 0, Glyph: "O"},
		},
	}

	errs := Validate(sys)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrSymbolValue, errs[0].Code)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	sys := &numeral.System{
		ID:    "bad",
		Name:  "",
		Base:  1,
		Logic: numeral.LogicPositional,
	}

	errs := Validate(sys)
	require.Len(t, errs, 2)

	codes := []string{errs[0].Code, errs[1].Code}
	assert.Contains(t, codes, ErrNameEmpty)
	assert.Contains(t, codes, ErrBaseInvalid)
}

func TestValidationErrorFormat(t *testing.T) {
	err := ValidationError{
		System:  "roman",
		Field:   "base",
		Message: "base must be >= 1, got 0",
		Code:    ErrBaseInvalid,
	}
	assert.Equal(t, "[E104] roman: base: base must be >= 1, got 0", err.Error())

	bare := ValidationError{Field: "id", Message: "system id is required", Code: ErrSystemIDEmpty}
	assert.Equal(t, "[E101] id: system id is required", bare.Error())
}
