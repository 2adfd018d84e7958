package nutrition

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightImperialToMetric(t *testing.T) {
	tests := []struct {
		name   string
		feet   float64
		inches float64
		want   float64
	}{
		{"5ft 10in", 5, 10, 177.8},
		{"6ft exact", 6, 0, 182.9},
		{"5ft 9in", 5, 9, 175.3},
		{"fractional inches", 5, 6.5, 168.9},
		{"zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HeightImperialToMetric(tt.feet, tt.inches)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestHeightImperialToMetric_Errors(t *testing.T) {
	tests := []struct {
		name    string
		feet    float64
		inches  float64
		wantErr error
		msg     string
	}{
		{"NaN feet", math.NaN(), 0, ErrInvalidInput, "Invalid input: feet must be a finite number"},
		{"infinite inches", 5, math.Inf(1), ErrInvalidInput, "Invalid input: inches must be a finite number"},
		{"negative feet", -1, 0, ErrNegativeValue, "Negative value: feet cannot be negative"},
		{"negative inches", 5, -2, ErrNegativeValue, "Negative value: inches cannot be negative"},
		{"NaN inches wins over negative feet", -1, math.NaN(), ErrInvalidInput, "Invalid input: inches must be a finite number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HeightImperialToMetric(tt.feet, tt.inches)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestConvertHeightToMetric_InchesDefaultToZero(t *testing.T) {
	got, err := ConvertHeightToMetric(6)
	require.NoError(t, err)
	assert.InDelta(t, 182.9, got, 1e-9)

	got, err = ConvertHeightToMetric(5, 10)
	require.NoError(t, err)
	assert.InDelta(t, 177.8, got, 1e-9)
}

func TestHeightMetricToImperial(t *testing.T) {
	tests := []struct {
		name string
		cm   float64
		want FeetInches
	}{
		{"180cm", 180, FeetInches{Feet: 5, Inches: 11}},
		{"177.8cm", 177.8, FeetInches{Feet: 5, Inches: 10}},
		{"exact six feet carries", 182.88, FeetInches{Feet: 6, Inches: 0}},
		{"rounds up into carry", 182.8, FeetInches{Feet: 6, Inches: 0}},
		{"150cm", 150, FeetInches{Feet: 4, Inches: 11}},
		{"zero", 0, FeetInches{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HeightMetricToImperial(tt.cm)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeightMetricToImperial_Errors(t *testing.T) {
	_, err := ConvertHeightToImperial(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ConvertHeightToImperial(-10)
	assert.ErrorIs(t, err, ErrNegativeValue)

	// Feet beyond int32 are rejected instead of wrapping around.
	_, err = ConvertHeightToImperial(1e21)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "Invalid input: centimeters must be a finite number")

	_, err = FormatHeight(1e21, Imperial)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHeightRoundTrip(t *testing.T) {
	pairs := []FeetInches{
		{5, 0}, {5, 6}, {5, 9}, {5, 10}, {5, 11}, {6, 2}, {4, 11}, {6, 5},
	}
	for _, p := range pairs {
		cm, err := HeightImperialToMetric(float64(p.Feet), float64(p.Inches))
		require.NoError(t, err)
		back, err := HeightMetricToImperial(cm)
		require.NoError(t, err)
		assert.Equal(t, p, back, "round trip through %.1f cm", cm)
	}
}

func TestWeightConversions(t *testing.T) {
	kg, err := WeightImperialToMetric(154)
	require.NoError(t, err)
	assert.InDelta(t, 69.9, kg, 1e-9)

	kg, err = ConvertWeightToMetric(150)
	require.NoError(t, err)
	assert.InDelta(t, 68.0, kg, 1e-9)

	lbs, err := WeightMetricToImperial(70)
	require.NoError(t, err)
	assert.InDelta(t, 154.3, lbs, 1e-9)

	lbs, err = ConvertWeightToImperial(0)
	require.NoError(t, err)
	assert.Zero(t, lbs)
}

func TestWeightConversions_Errors(t *testing.T) {
	_, err := WeightImperialToMetric(-1)
	assert.ErrorIs(t, err, ErrNegativeValue)
	assert.EqualError(t, err, "Negative value: pounds cannot be negative")

	_, err = WeightMetricToImperial(math.Inf(-1))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "Invalid input: kilograms must be a finite number")
}

func TestWeightRoundTripWithinTenth(t *testing.T) {
	for _, kg := range []float64{45.5, 60, 70.2, 88.8, 120, 150.3} {
		lbs, err := WeightMetricToImperial(kg)
		require.NoError(t, err)
		back, err := WeightImperialToMetric(lbs)
		require.NoError(t, err)
		assert.InDelta(t, kg, back, 0.1)
	}
}

func TestConvertHeight(t *testing.T) {
	t.Run("identity returns input unchanged", func(t *testing.T) {
		for _, units := range []string{Metric, Imperial} {
			for _, h := range []Height{LegacyNumber(175), FeetAndInches(5, 9), TotalInches(69)} {
				got, err := ConvertHeight(h, units, units)
				require.NoError(t, err)
				assert.Equal(t, h, got)
			}
		}
	})

	t.Run("imperial to metric", func(t *testing.T) {
		got, err := ConvertHeight(FeetAndInches(5, 10), Imperial, Metric)
		require.NoError(t, err)
		assert.Equal(t, HeightCentimeters, got.Kind)
		assert.InDelta(t, 177.8, got.Value, 1e-9)
	})

	t.Run("imperial missing inches defaults to zero", func(t *testing.T) {
		h := Height{Kind: HeightFeetInches, Feet: ptr(6.0)}
		got, err := ConvertHeight(h, Imperial, Metric)
		require.NoError(t, err)
		assert.InDelta(t, 182.9, got.Value, 1e-9)
	})

	t.Run("metric to imperial", func(t *testing.T) {
		got, err := ConvertHeight(Centimeters(182.88), Metric, Imperial)
		require.NoError(t, err)
		require.Equal(t, HeightFeetInches, got.Kind)
		assert.Equal(t, 6.0, *got.Feet)
		assert.Equal(t, 0.0, *got.Inches)
	})

	t.Run("non-object imperial height", func(t *testing.T) {
		_, err := ConvertHeight(LegacyNumber(69), Imperial, Metric)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidShape)

		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, KindFormat, e.Kind)
	})

	t.Run("imperial object without feet", func(t *testing.T) {
		h := Height{Kind: HeightFeetInches, Inches: ptr(9.0)}
		_, err := ConvertHeight(h, Imperial, Metric)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.EqualError(t, err, "Invalid input: feet must be a finite number")
	})

	t.Run("unsupported units", func(t *testing.T) {
		_, err := ConvertHeight(LegacyNumber(175), Metric, "stone")
		assert.ErrorIs(t, err, ErrUnsupportedConversion)
		assert.EqualError(t, err, "Unsupported conversion: metric to stone")
	})
}

func TestConvertWeight(t *testing.T) {
	for _, units := range []string{Metric, Imperial} {
		got, err := ConvertWeight(72.35, units, units)
		require.NoError(t, err)
		assert.Equal(t, 72.35, got)
	}

	got, err := ConvertWeight(154, Imperial, Metric)
	require.NoError(t, err)
	assert.InDelta(t, 69.9, got, 1e-9)

	got, err = ConvertWeight(70, Metric, Imperial)
	require.NoError(t, err)
	assert.InDelta(t, 154.3, got, 1e-9)

	_, err = ConvertWeight(70, "kg", "lbs")
	assert.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = ConvertWeight(-3, Metric, Imperial)
	assert.ErrorIs(t, err, ErrNegativeValue)
}
