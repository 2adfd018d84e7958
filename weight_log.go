package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"lg/stride-fitness-api/nutrition"
)

// maxWeight bounds a single entry in either unit system.
const maxWeight = 9999.9

// entryUnits picks the unit system for a weight-log request: the explicit
// request value when given, else the profile's preference, else metric when
// the user has no profile.
func (h *Handler) entryUnits(c *gin.Context, requested string) (string, error) {
	if requested != "" {
		if requested != nutrition.Metric && requested != nutrition.Imperial {
			return "", badRequest("units must be one of: metric, imperial")
		}
		return requested, nil
	}
	var units string
	err := h.db.QueryRow(c, "SELECT units FROM profiles WHERE user_id = $1", c.GetInt(userIDKey)).Scan(&units)
	return storedUnits(units, err)
}

// storedUnits interprets the profile units lookup. A user without a profile
// gets metric; any other lookup failure is returned so weights are never
// stored under a guessed unit system.
func storedUnits(units string, err error) (string, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nutrition.Metric, nil
	}
	if err != nil {
		return "", fmt.Errorf("looking up profile units: %w", err)
	}
	return units, nil
}

// weightToKG validates a weight given in units and converts it for storage.
func weightToKG(weight float64, units string) (float64, error) {
	if weight <= 0 || weight > maxWeight {
		return 0, badRequest("weight must be between 0 and 9999.9")
	}
	return nutrition.ConvertWeight(weight, units, nutrition.Metric)
}

// toWeightResponse renders a stored entry in the requested units.
func toWeightResponse(e weightEntry, units string) weightEntryResponse {
	w, err := nutrition.ConvertWeight(e.WeightKG, nutrition.Metric, units)
	if err != nil {
		w, units = e.WeightKG, nutrition.Metric
	}
	display, _ := nutrition.FormatWeight(w, units)
	return weightEntryResponse{weightEntry: e, Weight: w, Units: units, Display: display}
}

// getWeightLog returns weight entries for the authenticated user within [start, end].
// GET /api/weight-log?start=YYYY-MM-DD&end=YYYY-MM-DD[&units=imperial].
// Returns an empty array (not null) if no entries exist in the range.
func (h *Handler) getWeightLog(c *gin.Context) {
	userID := c.GetInt(userIDKey)
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		apiError(c, http.StatusBadRequest, "start and end query params are required")
		return
	}
	if _, err := time.Parse("2006-01-02", start); err != nil {
		apiError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return
	}
	if _, err := time.Parse("2006-01-02", end); err != nil {
		apiError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return
	}
	if start > end {
		apiError(c, http.StatusBadRequest, "start must not be after end")
		return
	}
	units, err := h.entryUnits(c, c.Query("units"))
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	entries, err := queryMany[weightEntry](h, c,
		`SELECT * FROM weight_log
		 WHERE user_id = @userID AND date >= @start AND date <= @end
		 ORDER BY date ASC`,
		pgx.NamedArgs{"userID": userID, "start": start, "end": end})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch weight log")
		return
	}

	resp := make([]weightEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toWeightResponse(e, units))
	}
	c.JSON(http.StatusOK, resp)
}

// upsertWeightEntry creates or updates the weight entry for the given date.
// POST /api/weight-log. Body: { "date": "YYYY-MM-DD", "weight": 185.5, "units"?: "imperial" }.
// The UNIQUE(user_id, date) constraint means posting the same date updates in place.
func (h *Handler) upsertWeightEntry(c *gin.Context) {
	userID := c.GetInt(userIDKey)

	var body upsertWeightRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		apiError(c, http.StatusBadRequest, "date is required")
		return
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	units, err := h.entryUnits(c, body.Units)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	kg, err := weightToKG(body.Weight, units)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	entry, err := queryOne[weightEntry](h, c,
		`INSERT INTO weight_log (user_id, date, weight_kg)
		 VALUES (@userID, @date, @weightKG)
		 ON CONFLICT (user_id, date) DO UPDATE SET weight_kg = EXCLUDED.weight_kg
		 RETURNING *`,
		pgx.NamedArgs{"userID": userID, "date": body.Date, "weightKG": kg})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to upsert weight entry")
		return
	}

	c.JSON(http.StatusCreated, toWeightResponse(entry, units))
}

// updateWeightEntry partially updates an existing weight entry.
// PUT /api/weight-log/:id. Body: { "date"?, "weight"?, "units"? }.
// COALESCE keeps the current value of any field the client omitted.
func (h *Handler) updateWeightEntry(c *gin.Context) {
	userID := c.GetInt(userIDKey)
	id := c.Param("id")

	var body updateWeightRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date != nil {
		if _, err := time.Parse("2006-01-02", *body.Date); err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
	}
	units, err := h.entryUnits(c, body.Units)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	var weightKG *float64
	if body.Weight != nil {
		kg, err := weightToKG(*body.Weight, units)
		if err != nil {
			h.respondEngineError(c, err)
			return
		}
		weightKG = &kg
	}

	entry, err := queryOne[weightEntry](h, c,
		`UPDATE weight_log SET
			date      = COALESCE(@date, date),
			weight_kg = COALESCE(@weightKG, weight_kg)
		 WHERE id = @id AND user_id = @userID
		 RETURNING *`,
		pgx.NamedArgs{"id": id, "userID": userID, "date": body.Date, "weightKG": weightKG})
	if err != nil {
		// A missing row is the client's problem; anything else is ours.
		if errors.Is(err, pgx.ErrNoRows) {
			apiError(c, http.StatusNotFound, "weight entry not found")
		} else {
			apiError(c, http.StatusInternalServerError, "failed to update weight entry")
		}
		return
	}

	c.JSON(http.StatusOK, toWeightResponse(entry, units))
}

// deleteWeightEntry removes a weight log entry by ID.
// DELETE /api/weight-log/:id. Returns 204 on success, 404 if not found.
// Ownership is enforced by requiring both id and user_id to match.
func (h *Handler) deleteWeightEntry(c *gin.Context) {
	userID := c.GetInt(userIDKey)
	id := c.Param("id")

	result, err := h.db.Exec(c,
		"DELETE FROM weight_log WHERE id = @id AND user_id = @userID",
		pgx.NamedArgs{"id": id, "userID": userID})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to delete weight entry")
		return
	}
	if result.RowsAffected() == 0 {
		apiError(c, http.StatusNotFound, "weight entry not found")
		return
	}

	c.Status(http.StatusNoContent)
}
