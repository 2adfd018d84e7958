package nutrition

import "github.com/rs/zerolog"

// ActivityLevel is one of the five canonical activity levels.
type ActivityLevel string

const (
	Sedentary   ActivityLevel = "sedentary"
	Light       ActivityLevel = "light"
	Moderate    ActivityLevel = "moderate"
	Active      ActivityLevel = "active"
	ExtraActive ActivityLevel = "extra_active"
)

// Multiplier returns the TDEE multiplier for a canonical level.
func (a ActivityLevel) Multiplier() float64 {
	return activityMultipliers[a]
}

var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:   1.2,
	Light:       1.375,
	Moderate:    1.55,
	Active:      1.725,
	ExtraActive: 1.9,
}

// activityAliases maps every accepted input string to its canonical level.
// Lookups are case-sensitive.
var activityAliases = map[string]ActivityLevel{
	"sedentary": Sedentary,
	"none":      Sedentary,
	"0":         Sedentary,

	"light":          Light,
	"lightly_active": Light,
	"1-3":            Light,

	"moderate":          Moderate,
	"moderately_active": Moderate,
	"3-5":               Moderate,

	"active":      Active,
	"very_active": Active,
	"6-7":         Active,

	"extra_active":     ExtraActive,
	"extremely_active": ExtraActive,
	"2x":               ExtraActive,
}

// ResolveActivityLevel maps an accepted alias to its canonical level.
func ResolveActivityLevel(key string) (ActivityLevel, bool) {
	level, ok := activityAliases[key]
	return level, ok
}

// CalculateTDEE scales a BMR by the multiplier of activityLevel and rounds
// to the nearest whole calorie.
func CalculateTDEE(bmr float64, activityLevel string, log zerolog.Logger) (int, error) {
	if !isFinite(bmr) || bmr <= 0 {
		err := &Error{
			Kind:    KindDownstream,
			Field:   "bmr",
			Code:    ErrInvalidBMR,
			Message: "Invalid BMR value: must be a positive number",
		}
		log.Error().Float64("bmr", bmr).Msg(err.Message)
		return 0, err
	}
	if activityLevel == "" {
		err := &Error{
			Kind:    KindDownstream,
			Field:   "activity_level",
			Code:    ErrMissingActivityLevel,
			Message: "Activity level is required",
		}
		log.Error().Msg(err.Message)
		return 0, err
	}

	level, ok := ResolveActivityLevel(activityLevel)
	if !ok {
		err := &Error{
			Kind:    KindDownstream,
			Field:   "activity_level",
			Code:    ErrUnrecognizedActivityLevel,
			Message: "Unrecognized activity level: " + activityLevel,
		}
		log.Error().Str("activity_level", activityLevel).Msg(err.Message)
		return 0, err
	}

	tdee := int(roundHalfUp(bmr * level.Multiplier()))
	log.Info().
		Int("tdee", tdee).
		Str("activity_level", string(level)).
		Msg("TDEE calculated")
	return tdee, nil
}
