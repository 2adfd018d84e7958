package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lg/stride-fitness-api/nutrition"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time and return nil
// so that *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
type user struct {
	ID        int        `json:"id" db:"id"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	AuthToken string     `json:"-" db:"auth_token"`
	Password  string     `json:"-" db:"password"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// profile maps to the profiles table. Biometrics are always stored metric;
// Units is only the user's display preference. Every biometric is nullable
// so a half-finished onboarding still loads.
type profile struct {
	UserID        int        `json:"user_id"        db:"user_id"`
	Sex           *string    `json:"sex"            db:"sex"`
	DateOfBirth   *DateOnly  `json:"date_of_birth"  db:"date_of_birth"`
	HeightCM      *float64   `json:"height_cm"      db:"height_cm"`
	WeightKG      *float64   `json:"weight_kg"      db:"weight_kg"`
	ActivityLevel *string    `json:"activity_level" db:"activity_level"`
	Goals         []string   `json:"goals"          db:"goals"`
	Units         string     `json:"units"          db:"units"`
	UpdatedAt     *time.Time `json:"updated_at"     db:"updated_at"`

	// Derived server-side on every read; db:"-" keeps RowToStructByName off them.
	Computed *profileTargets `json:"computed,omitempty" db:"-"`
	Display  *profileDisplay `json:"display,omitempty"  db:"-"`
}

// profileTargets are the engine outputs for a complete profile.
type profileTargets struct {
	Age         int                   `json:"age"`
	BMR         int                   `json:"bmr"`
	TDEE        int                   `json:"tdee"`
	Goal        nutrition.Goal        `json:"goal"`
	Macros      nutrition.MacroResult `json:"macros"`
	BMI         float64               `json:"bmi"`
	BMICategory string                `json:"bmi_category"`
}

// profileDisplay holds height and weight rendered in the profile's units.
type profileDisplay struct {
	Height string `json:"height,omitempty"`
	Weight string `json:"weight,omitempty"`
}

// weightEntry maps to the weight_log table.
type weightEntry struct {
	ID        int        `json:"id"         db:"id"`
	UserID    int        `json:"user_id"    db:"user_id"`
	Date      DateOnly   `json:"date"       db:"date"`
	WeightKG  float64    `json:"weight_kg"  db:"weight_kg"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
}

// weightEntryResponse is a weightEntry plus the weight in the requested units.
type weightEntryResponse struct {
	weightEntry
	Weight  float64 `json:"weight"`
	Units   string  `json:"units"`
	Display string  `json:"display"`
}

/* ─── Request bodies ─────────────────────────────────────────────────── */

// patchProfileRequest is the request body for PATCH /api/profile. All fields
// are pointers so only the ones the client sent get written. Height accepts
// every wire shape the engine understands; Weight is in the request's units
// (or the stored profile units when Units is omitted).
type patchProfileRequest struct {
	Sex           *string           `json:"sex"`
	DateOfBirth   *string           `json:"date_of_birth"` // YYYY-MM-DD
	Height        *nutrition.Height `json:"height"`
	Weight        *float64          `json:"weight"`
	ActivityLevel *string           `json:"activity_level"`
	Goals         *[]string         `json:"goals"`
	Units         *string           `json:"units"`
}

// upsertWeightRequest is the request body for POST /api/weight-log.
type upsertWeightRequest struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Units  string  `json:"units"`
}

// updateWeightRequest is the request body for PUT /api/weight-log/:id.
type updateWeightRequest struct {
	Date   *string  `json:"date"`
	Weight *float64 `json:"weight"`
	Units  string   `json:"units"`
}

// tdeeRequest is the request body for POST /api/nutrition/tdee.
type tdeeRequest struct {
	BMR           float64 `json:"bmr"`
	ActivityLevel string  `json:"activity_level"`
}

// macrosRequest is the request body for POST /api/nutrition/macros.
type macrosRequest struct {
	TDEE  float64  `json:"tdee"`
	Goals []string `json:"goals"`
}

// convertHeightRequest is the request body for POST /api/convert/height.
type convertHeightRequest struct {
	Value nutrition.Height `json:"value"`
	From  string           `json:"from"`
	To    string           `json:"to"`
}

// convertWeightRequest is the request body for POST /api/convert/weight.
type convertWeightRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from"`
	To    string  `json:"to"`
}
