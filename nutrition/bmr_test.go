package nutrition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMR_MaleMetric(t *testing.T) {
	rec, log := newLogRecorder()

	bmr, err := CalculateBMR(maleMetric(), log)

	require.NoError(t, err)
	assert.Equal(t, 1649, bmr)

	infos := rec.atLevel(t, "info")
	require.Len(t, infos, 1)
	assert.EqualValues(t, 1649, infos[0]["bmr"])
	assert.Empty(t, rec.atLevel(t, "warn"))
}

func TestCalculateBMR_FemaleImperial(t *testing.T) {
	rec, log := newLogRecorder()
	in := NewBiometricInput(30, 154, FeetAndInches(5, 9), Female, Imperial)

	bmr, err := CalculateBMR(in, log)

	require.NoError(t, err)
	assert.Equal(t, 1483, bmr)
	assert.Empty(t, rec.atLevel(t, "warn"))
}

func TestCalculateBMR_LegacyTotalInchesWarns(t *testing.T) {
	rec, log := newLogRecorder()
	in := NewBiometricInput(30, 154, LegacyNumber(69), Female, Imperial)

	bmr, err := CalculateBMR(in, log)

	require.NoError(t, err)
	assert.Equal(t, 1483, bmr, "69 total inches is the same height as 5'9\"")
	warns := rec.atLevel(t, "warn")
	require.Len(t, warns, 1)
	assert.EqualValues(t, 69, warns[0]["height_in"])
}

func TestCalculateBMR_TaggedTotalInchesDoesNotWarn(t *testing.T) {
	rec, log := newLogRecorder()
	in := NewBiometricInput(30, 154, TotalInches(69), Female, Imperial)

	bmr, err := CalculateBMR(in, log)

	require.NoError(t, err)
	assert.Equal(t, 1483, bmr)
	assert.Empty(t, rec.atLevel(t, "warn"))
}

func TestCalculateBMR_FemaleOffset(t *testing.T) {
	_, log := newLogRecorder()
	male, err := CalculateBMR(maleMetric(), log)
	require.NoError(t, err)

	female, err := CalculateBMR(NewBiometricInput(30, 70, LegacyNumber(175), Female, Metric), log)
	require.NoError(t, err)

	// 1648.75 → 1649 and 1482.75 → 1483
	assert.Equal(t, 166, male-female)
}

func TestCalculateBMR_ValidationErrorPropagates(t *testing.T) {
	rec, log := newLogRecorder()
	in := maleMetric()
	in.Gender = nil

	bmr, err := CalculateBMR(in, log)

	assert.Zero(t, bmr)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, KindMissingField, e.Kind)
	assert.Equal(t, "Missing required field: gender", e.Message)
	assert.Len(t, rec.atLevel(t, "error"), 1)
	assert.Empty(t, rec.atLevel(t, "info"))
}
