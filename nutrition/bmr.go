package nutrition

import "github.com/rs/zerolog"

// CalculateBMR computes Basal Metabolic Rate with the Mifflin-St Jeor
// equation. The input is validated first, so this is safe to call directly.
// Imperial inputs are normalized to kg/cm at full precision and only the
// final value is rounded.
//
//	male:   10*kg + 6.25*cm - 5*age + 5
//	female: 10*kg + 6.25*cm - 5*age - 161
func CalculateBMR(in BiometricInput, log zerolog.Logger) (int, error) {
	if _, err := ValidateBMRInputs(in, log); err != nil {
		return 0, err
	}

	units := *in.Units
	weightKG := *in.Weight
	if units == Imperial {
		weightKG *= kgPerPound
	}

	height, deprecated := in.Height.Resolve(units)
	if deprecated {
		log.Warn().
			Float64("height_in", height.Value).
			Msg("numeric imperial height is deprecated; treating it as total inches")
	}
	heightCM, _ := height.CM()

	age := *in.Age
	bmr := 10*weightKG + 6.25*heightCM - 5*age
	if *in.Gender == Male {
		bmr += 5
	} else {
		bmr -= 161
	}

	result := int(roundHalfUp(bmr))
	log.Info().
		Int("bmr", result).
		Str("gender", *in.Gender).
		Str("units", units).
		Msg("BMR calculated")
	return result, nil
}
