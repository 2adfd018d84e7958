// Package nutrition converts biometrics between metric and imperial units and
// derives BMR, TDEE and macronutrient targets from them. Every operation is a
// pure function of its arguments; the only side effect is log records written
// to the zerolog.Logger the caller passes in.
package nutrition

import "math"

// UnitSystem tokens. Anything else is rejected by the conversion helpers.
const (
	Metric   = "metric"
	Imperial = "imperial"
)

const (
	cmPerInch     = 2.54
	inchesPerFoot = 12
	kgPerPound    = 0.45359237
)

// FeetInches is the structured imperial height representation.
type FeetInches struct {
	Feet   int `json:"feet"`
	Inches int `json:"inches"`
}

// roundHalfUp rounds x to the nearest integer, with .5 going toward +Inf.
// math.Round rounds half away from zero, which differs for negative values.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// round1 rounds x to one decimal place using roundHalfUp.
func round1(x float64) float64 {
	return roundHalfUp(x*10) / 10
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// checkMeasure enforces the shared contract of every conversion: the value
// must be finite and non-negative.
func checkMeasure(field string, v float64) error {
	if !isFinite(v) {
		return invalidInputError(field)
	}
	if v < 0 {
		return negativeValueError(field)
	}
	return nil
}

/* ─── Height ─────────────────────────────────────────────────────────── */

// HeightImperialToMetric converts feet and inches to centimeters, rounded to
// one decimal place.
// Both values are checked for finiteness before either sign is checked.
func HeightImperialToMetric(feet, inches float64) (float64, error) {
	switch {
	case !isFinite(feet):
		return 0, invalidInputError("feet")
	case !isFinite(inches):
		return 0, invalidInputError("inches")
	case feet < 0:
		return 0, negativeValueError("feet")
	case inches < 0:
		return 0, negativeValueError("inches")
	}
	return round1(feetInchesToCM(feet, inches)), nil
}

// ConvertHeightToMetric is HeightImperialToMetric with inches optional;
// omitted inches count as 0. Only the first extra argument is used.
func ConvertHeightToMetric(feet float64, inches ...float64) (float64, error) {
	in := 0.0
	if len(inches) > 0 {
		in = inches[0]
	}
	return HeightImperialToMetric(feet, in)
}

// HeightMetricToImperial converts centimeters to whole feet and inches. When
// inches round up to 12 the carry moves into feet, so 182.88 cm is 6'0".
func HeightMetricToImperial(cm float64) (FeetInches, error) {
	if err := checkMeasure("centimeters", cm); err != nil {
		return FeetInches{}, err
	}
	totalInches := cm / cmPerInch
	wholeFeet := math.Floor(totalInches / inchesPerFoot)
	if wholeFeet >= math.MaxInt32 {
		return FeetInches{}, invalidInputError("centimeters")
	}
	feet := int(wholeFeet)
	inches := int(roundHalfUp(math.Mod(totalInches, inchesPerFoot)))
	if inches == inchesPerFoot {
		feet++
		inches = 0
	}
	return FeetInches{Feet: feet, Inches: inches}, nil
}

// ConvertHeightToImperial is an alias of HeightMetricToImperial.
func ConvertHeightToImperial(cm float64) (FeetInches, error) {
	return HeightMetricToImperial(cm)
}

// feetInchesToCM is the unrounded conversion used inside formulas.
func feetInchesToCM(feet, inches float64) float64 {
	return (feet*inchesPerFoot + inches) * cmPerInch
}

/* ─── Weight ─────────────────────────────────────────────────────────── */

// WeightImperialToMetric converts pounds to kilograms, rounded to one decimal.
func WeightImperialToMetric(lbs float64) (float64, error) {
	if err := checkMeasure("pounds", lbs); err != nil {
		return 0, err
	}
	return round1(lbs * kgPerPound), nil
}

// WeightMetricToImperial converts kilograms to pounds, rounded to one decimal.
func WeightMetricToImperial(kg float64) (float64, error) {
	if err := checkMeasure("kilograms", kg); err != nil {
		return 0, err
	}
	return round1(kg / kgPerPound), nil
}

// ConvertWeightToMetric is an alias of WeightImperialToMetric.
func ConvertWeightToMetric(lbs float64) (float64, error) { return WeightImperialToMetric(lbs) }

// ConvertWeightToImperial is an alias of WeightMetricToImperial.
func ConvertWeightToImperial(kg float64) (float64, error) { return WeightMetricToImperial(kg) }

/* ─── Unit-system wrappers ───────────────────────────────────────────── */

func isUnitSystem(s string) bool {
	return s == Metric || s == Imperial
}

// ConvertHeight converts h between unit systems. Equal systems return h
// unchanged. Metric input must be centimeters (or a bare number); imperial
// input must be the feet/inches shape, with missing inches read as 0.
func ConvertHeight(h Height, fromUnit, toUnit string) (Height, error) {
	if fromUnit == toUnit {
		return h, nil
	}
	if !isUnitSystem(fromUnit) || !isUnitSystem(toUnit) {
		return Height{}, unsupportedConversionError(fromUnit, toUnit)
	}

	if fromUnit == Imperial {
		if h.Kind != HeightFeetInches {
			return Height{}, invalidShapeError()
		}
		if h.Feet == nil {
			return Height{}, invalidInputError("feet")
		}
		inches := 0.0
		if h.Inches != nil {
			inches = *h.Inches
		}
		cm, err := HeightImperialToMetric(*h.Feet, inches)
		if err != nil {
			return Height{}, err
		}
		return Centimeters(cm), nil
	}

	if h.Kind != HeightCentimeters && h.Kind != HeightLegacy {
		return Height{}, invalidShapeError()
	}
	fi, err := HeightMetricToImperial(h.Value)
	if err != nil {
		return Height{}, err
	}
	return FeetAndInches(float64(fi.Feet), float64(fi.Inches)), nil
}

// ConvertWeight converts v between unit systems. Equal systems return v
// unchanged.
func ConvertWeight(v float64, fromUnit, toUnit string) (float64, error) {
	if fromUnit == toUnit {
		return v, nil
	}
	if !isUnitSystem(fromUnit) || !isUnitSystem(toUnit) {
		return 0, unsupportedConversionError(fromUnit, toUnit)
	}
	if fromUnit == Imperial {
		return WeightImperialToMetric(v)
	}
	return WeightMetricToImperial(v)
}
