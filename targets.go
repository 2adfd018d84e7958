package main

import (
	"time"

	"github.com/rs/zerolog"

	"lg/stride-fitness-api/nutrition"
)

// ageOn returns the whole years between dob and today, one less when this
// year's birthday hasn't happened yet.
func ageOn(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Before(dob.AddDate(age, 0, 0)) {
		age--
	}
	return age
}

// computeTargets runs the nutrition engine over a stored profile.
// Returns ok=false when any field the engine needs is nil or the engine
// rejects the stored values (e.g. an age outside 1..120 from a bad DOB);
// the engine has already logged why in that case.
func computeTargets(p *profile, log zerolog.Logger) (profileTargets, bool) {
	if p.Sex == nil || p.DateOfBirth == nil || p.HeightCM == nil ||
		p.WeightKG == nil || p.ActivityLevel == nil {
		return profileTargets{}, false
	}

	age := ageOn(p.DateOfBirth.Time, time.Now())
	plan, err := nutrition.CalculatePlan(nutrition.PlanRequest{
		Biometrics: nutrition.NewBiometricInput(
			float64(age), *p.WeightKG, nutrition.Centimeters(*p.HeightCM), *p.Sex, nutrition.Metric),
		ActivityLevel: *p.ActivityLevel,
		Goals:         p.Goals,
	}, log)
	if err != nil {
		return profileTargets{}, false
	}

	bmi, err := nutrition.CalculateBMI(*p.WeightKG, *p.HeightCM)
	if err != nil {
		return profileTargets{}, false
	}

	return profileTargets{
		Age:         age,
		BMR:         plan.BMR,
		TDEE:        plan.TDEE,
		Goal:        plan.Goal,
		Macros:      plan.Macros,
		BMI:         bmi,
		BMICategory: nutrition.BMICategory(bmi),
	}, true
}

// displayFor renders the stored metric height and weight in the profile's
// units. Fields that are nil or fail to format are left empty.
func displayFor(p *profile) profileDisplay {
	var d profileDisplay
	if p.HeightCM != nil {
		d.Height, _ = nutrition.FormatHeight(*p.HeightCM, p.Units)
	}
	if p.WeightKG != nil {
		if w, err := nutrition.ConvertWeight(*p.WeightKG, nutrition.Metric, p.Units); err == nil {
			d.Weight, _ = nutrition.FormatWeight(w, p.Units)
		}
	}
	return d
}

// populateComputed fills the derived fields on p. Computed stays nil for an
// incomplete profile.
func populateComputed(p *profile, log zerolog.Logger) {
	if targets, ok := computeTargets(p, log); ok {
		p.Computed = &targets
	}
	d := displayFor(p)
	p.Display = &d
}
