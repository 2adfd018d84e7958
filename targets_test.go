package main

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lg/stride-fitness-api/nutrition"
)

// makeProfile constructs a fully-populated metric profile for computeTargets
// tests. Individual tests nil out specific fields to exercise missing-field guards.
func makeProfile(sex string, dobYear int, heightCM, weightKG float64, activityLevel string, goals ...string) *profile {
	dob := DateOnly{time.Date(dobYear, 1, 1, 0, 0, 0, 0, time.UTC)}
	return &profile{
		UserID:        1,
		Sex:           &sex,
		DateOfBirth:   &dob,
		HeightCM:      &heightCM,
		WeightKG:      &weightKG,
		ActivityLevel: &activityLevel,
		Goals:         goals,
		Units:         nutrition.Metric,
	}
}

var discard = zerolog.New(io.Discard)

/* ─── ageOn ──────────────────────────────────────────────────────────── */

func TestAgeOn(t *testing.T) {
	dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 35, ageOn(dob, time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 36, ageOn(dob, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 36, ageOn(dob, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
}

/* ─── Missing-field guard tests ──────────────────────────────────────── */

// TestComputeTargets_MissingFields verifies that ok=false is returned when any
// required profile field is nil.
func TestComputeTargets_MissingFields(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(p *profile)
	}{
		{"nil Sex", func(p *profile) { p.Sex = nil }},
		{"nil DateOfBirth", func(p *profile) { p.DateOfBirth = nil }},
		{"nil HeightCM", func(p *profile) { p.HeightCM = nil }},
		{"nil WeightKG", func(p *profile) { p.WeightKG = nil }},
		{"nil ActivityLevel", func(p *profile) { p.ActivityLevel = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := makeProfile("male", 1990, 175, 80, "sedentary")
			tc.mutFn(p)
			_, ok := computeTargets(p, discard)
			assert.False(t, ok)
		})
	}
}

/* ─── Input validation guard tests ───────────────────────────────────── */

func TestComputeTargets_UnknownActivityLevel(t *testing.T) {
	p := makeProfile("male", 1990, 175, 80, "unknown")
	_, ok := computeTargets(p, discard)
	assert.False(t, ok)
}

// A future date of birth yields an age below 1, which the engine rejects.
func TestComputeTargets_FutureDOB(t *testing.T) {
	p := makeProfile("male", time.Now().Year()+1, 175, 80, "sedentary")
	_, ok := computeTargets(p, discard)
	assert.False(t, ok)
}

func TestComputeTargets_AgeTooHigh(t *testing.T) {
	p := makeProfile("male", time.Now().Year()-200, 175, 80, "sedentary")
	_, ok := computeTargets(p, discard)
	assert.False(t, ok)
}

/* ─── BMR accuracy tests ─────────────────────────────────────────────── */

// TestComputeTargets_MaleBMR checks the male formula for a profile born
// 1990-01-01. Age depends on the current date, so the tolerance covers one
// year of drift (5 kcal) plus rounding.
func TestComputeTargets_MaleBMR(t *testing.T) {
	p := makeProfile("male", 1990, 175, 80, "sedentary")
	targets, ok := computeTargets(p, discard)
	require.True(t, ok)

	age := float64(ageOn(p.DateOfBirth.Time, time.Now()))
	expected := 10*80 + 6.25*175 - 5*age + 5
	assert.LessOrEqual(t, math.Abs(float64(targets.BMR)-expected), 1.0)
	assert.Equal(t, int(age), targets.Age)
}

func TestComputeTargets_FemaleBMR(t *testing.T) {
	p := makeProfile("female", 1990, 175, 80, "sedentary")
	targets, ok := computeTargets(p, discard)
	require.True(t, ok)

	age := float64(ageOn(p.DateOfBirth.Time, time.Now()))
	expected := 10*80 + 6.25*175 - 5*age - 161
	assert.LessOrEqual(t, math.Abs(float64(targets.BMR)-expected), 1.0)
}

/* ─── TDEE, macros and BMI ───────────────────────────────────────────── */

func TestComputeTargets_Chain(t *testing.T) {
	p := makeProfile("male", 1990, 175, 80, "moderate", "muscle_gain")
	targets, ok := computeTargets(p, discard)
	require.True(t, ok)

	assert.InDelta(t, float64(targets.BMR)*1.55, float64(targets.TDEE), 0.5)
	assert.Equal(t, nutrition.MuscleGain, targets.Goal)
	assert.InDelta(t, targets.TDEE, targets.Macros.Calories, 8.5)
	assert.Equal(t, 26.1, targets.BMI)
	assert.Equal(t, "Overweight", targets.BMICategory)
}

func TestComputeTargets_NoGoalsUsesMaintenance(t *testing.T) {
	p := makeProfile("female", 1990, 165, 60, "light")
	targets, ok := computeTargets(p, discard)
	require.True(t, ok)
	assert.Equal(t, nutrition.Maintenance, targets.Goal)
}

/* ─── Display ────────────────────────────────────────────────────────── */

func TestPopulateComputed_ImperialDisplay(t *testing.T) {
	p := makeProfile("male", 1990, 180.3, 81.6, "active")
	p.Units = nutrition.Imperial

	populateComputed(p, discard)

	require.NotNil(t, p.Computed)
	require.NotNil(t, p.Display)
	assert.Equal(t, `5'11"`, p.Display.Height)
	assert.Equal(t, "179.9 lbs", p.Display.Weight)
}

func TestPopulateComputed_IncompleteProfile(t *testing.T) {
	p := &profile{UserID: 1, Units: nutrition.Metric}
	h := 170.0
	p.HeightCM = &h

	populateComputed(p, discard)

	assert.Nil(t, p.Computed)
	require.NotNil(t, p.Display)
	assert.Equal(t, "170 cm", p.Display.Height)
	assert.Empty(t, p.Display.Weight)
}
