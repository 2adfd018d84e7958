package nutrition

import "github.com/rs/zerolog"

const (
	minAge = 1
	maxAge = 120
)

// ValidateBMRInputs checks a BiometricInput before any formula runs. It
// returns true on success; otherwise the first failure, logged at error
// level before it is returned.
//
// Presence is checked for every field first, then values in the order age,
// weight, units, height, gender. Height comes after units because a bare
// number means centimeters or total inches depending on units.
func ValidateBMRInputs(in BiometricInput, log zerolog.Logger) (bool, error) {
	if err := validate(in); err != nil {
		log.Error().
			Str("field", err.Field).
			Str("kind", err.Kind.String()).
			Msg(err.Message)
		return false, err
	}
	return true, nil
}

func validate(in BiometricInput) *Error {
	switch {
	case in.Age == nil:
		return missingFieldError("age")
	case in.Weight == nil:
		return missingFieldError("weight")
	case in.Height == nil:
		return missingFieldError("height")
	case in.Gender == nil:
		return missingFieldError("gender")
	case in.Units == nil:
		return missingFieldError("units")
	}

	if age := *in.Age; !isFinite(age) || age < minAge || age > maxAge {
		return invalidValueError("age", "must be a number between 1 and 120")
	}
	if w := *in.Weight; !isFinite(w) || w <= 0 {
		return invalidValueError("weight", "must be a positive number")
	}
	units := *in.Units
	if !isUnitSystem(units) {
		return invalidValueError("units", "must be 'metric' or 'imperial'")
	}
	if err := validateHeight(*in.Height, units); err != nil {
		return err
	}
	if g := *in.Gender; g != Male && g != Female {
		return invalidValueError("gender", "must be 'male' or 'female'")
	}
	return nil
}

func validateHeight(h Height, units string) *Error {
	h, _ = h.Resolve(units)

	switch h.Kind {
	case HeightCentimeters:
		if !isFinite(h.Value) || h.Value <= 0 {
			return invalidValueError("height", "must be a positive number of centimeters")
		}
		return nil
	case HeightTotalInches:
		if !isFinite(h.Value) || h.Value <= 0 {
			return invalidValueError("height", "must be a positive number of total inches")
		}
		return nil
	}

	if units == Metric {
		return invalidValueError("height", "must be a positive number of centimeters")
	}
	if h.Kind != HeightFeetInches {
		return formatError("height", "expected a number or an object with feet and inches")
	}
	if h.Feet == nil || h.Inches == nil {
		return formatError("height", "imperial height must include both feet and inches")
	}

	feet, inches := *h.Feet, *h.Inches
	if !isFinite(feet) || !isFinite(inches) {
		return invalidValueError("height", "feet and inches must be finite numbers")
	}
	if feet < 0 || inches < 0 || inches >= inchesPerFoot {
		return invalidValueError("height", "feet must be 0 or more and inches must be at least 0 and less than 12")
	}
	if feet == 0 && inches == 0 {
		return invalidValueError("height", "feet and inches cannot both be zero")
	}
	return nil
}
