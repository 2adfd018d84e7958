package main

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"lg/stride-fitness-api/nutrition"
)

const selectProfileSQL = "SELECT * FROM profiles WHERE user_id = @userID"

// getProfile returns the authenticated user's profile with computed targets
// (bmr, tdee, macros, bmi) when every required field is present.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt(userIDKey)

	p, err := queryOne[profile](h, c, selectProfileSQL, pgx.NamedArgs{"userID": userID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "profile not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		}
		return
	}

	populateComputed(&p, h.requestLogger(c))
	c.JSON(http.StatusOK, p)
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. Height and weight arrive in the request's units (or the
// stored units when the request doesn't change them) and are converted to
// metric before they are written.
func (h *Handler) patchProfile(c *gin.Context) {
	userID := c.GetInt(userIDKey)

	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	current, err := queryOne[profile](h, c, selectProfileSQL, pgx.NamedArgs{"userID": userID})
	if err != nil {
		apiError(c, http.StatusNotFound, "profile not found")
		return
	}

	setClauses, args, err := profileUpdates(body, current.Units, h.requestLogger(c))
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	if len(setClauses) == 0 {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}
	args["userID"] = userID

	query := "UPDATE profiles SET " +
		strings.Join(setClauses, ", ") +
		", updated_at = now() WHERE user_id = @userID RETURNING *"

	p, err := queryOne[profile](h, c, query, args)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}

	populateComputed(&p, h.requestLogger(c))
	c.JSON(http.StatusOK, p)
}

// profileUpdates validates a patch request and builds its SET clauses.
// profileUnits interprets height and weight when the request omits units. A
// bare height number under imperial units is read as total inches and logged
// as deprecated.
// Validation failures are returned as *nutrition.Error or *requestError so
// respondEngineError can map them to 400.
func profileUpdates(body patchProfileRequest, profileUnits string, log zerolog.Logger) ([]string, pgx.NamedArgs, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{}

	units := profileUnits
	if body.Units != nil {
		if *body.Units != nutrition.Metric && *body.Units != nutrition.Imperial {
			return nil, nil, badRequest("units must be one of: metric, imperial")
		}
		units = *body.Units
		setClauses = append(setClauses, "units = @units")
		args["units"] = units
	}

	if body.Sex != nil {
		if *body.Sex != nutrition.Male && *body.Sex != nutrition.Female {
			return nil, nil, badRequest("sex must be one of: male, female")
		}
		setClauses = append(setClauses, "sex = @sex")
		args["sex"] = *body.Sex
	}
	if body.DateOfBirth != nil {
		if _, err := time.Parse("2006-01-02", *body.DateOfBirth); err != nil {
			return nil, nil, badRequest("invalid date_of_birth, expected YYYY-MM-DD")
		}
		setClauses = append(setClauses, "date_of_birth = @dateOfBirth")
		args["dateOfBirth"] = *body.DateOfBirth
	}
	if body.Height != nil {
		cm, err := nutrition.NormalizeHeight(*body.Height, units)
		if err != nil {
			return nil, nil, err
		}
		if resolved, deprecated := body.Height.Resolve(units); deprecated {
			log.Warn().
				Float64("height_in", resolved.Value).
				Msg("numeric imperial height is deprecated; treating it as total inches")
		}
		setClauses = append(setClauses, "height_cm = @heightCM")
		args["heightCM"] = cm
	}
	if body.Weight != nil {
		if *body.Weight <= 0 {
			return nil, nil, badRequest("weight must be a positive number")
		}
		kg, err := nutrition.ConvertWeight(*body.Weight, units, nutrition.Metric)
		if err != nil {
			return nil, nil, err
		}
		setClauses = append(setClauses, "weight_kg = @weightKG")
		args["weightKG"] = kg
	}
	// Activity levels are checked against the engine's alias table.
	if body.ActivityLevel != nil {
		if _, ok := nutrition.ResolveActivityLevel(*body.ActivityLevel); !ok {
			return nil, nil, badRequest("Unrecognized activity level: " + *body.ActivityLevel)
		}
		setClauses = append(setClauses, "activity_level = @activityLevel")
		args["activityLevel"] = *body.ActivityLevel
	}
	// Goals are stored as sent. Unrecognized tags are legal and fall back to
	// the maintenance split at calculation time.
	if body.Goals != nil {
		goals := *body.Goals
		if goals == nil {
			goals = []string{}
		}
		setClauses = append(setClauses, "goals = @goals")
		args["goals"] = goals
	}

	return setClauses, args, nil
}
