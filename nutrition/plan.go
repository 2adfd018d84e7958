package nutrition

import "github.com/rs/zerolog"

// PlanRequest is everything needed to go from raw biometrics to macro targets.
type PlanRequest struct {
	Biometrics    BiometricInput `json:"biometrics"`
	ActivityLevel string         `json:"activity_level"`
	Goals         []string       `json:"goals"`
}

// Plan is the combined output of the BMR, TDEE and macro stages.
type Plan struct {
	BMR    int         `json:"bmr"`
	TDEE   int         `json:"tdee"`
	Goal   Goal        `json:"goal"`
	Macros MacroResult `json:"macros"`
}

// CalculatePlan runs BMR, TDEE and macros in sequence and stops at the first
// failure, returning it unchanged.
func CalculatePlan(req PlanRequest, log zerolog.Logger) (Plan, error) {
	bmr, err := CalculateBMR(req.Biometrics, log)
	if err != nil {
		return Plan{}, err
	}
	tdee, err := CalculateTDEE(float64(bmr), req.ActivityLevel, log)
	if err != nil {
		return Plan{}, err
	}
	macros, err := CalculateMacros(float64(tdee), req.Goals, log)
	if err != nil {
		return Plan{}, err
	}
	goal, _ := PrimaryGoal(req.Goals)
	return Plan{BMR: bmr, TDEE: tdee, Goal: goal, Macros: macros}, nil
}
