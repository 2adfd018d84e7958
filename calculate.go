package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lg/stride-fitness-api/nutrition"
)

// measured runs one engine call and records it in the calculation metrics.
func measured[T any](operation string, fn func() (T, error)) (result T, err error) {
	defer observeCalculation(operation, time.Now(), &err)
	return fn()
}

/* ─── Calculators ────────────────────────────────────────────────────── */

// calculateBMR handles POST /api/nutrition/bmr.
// Body: { age, weight, height, gender, units } → { "bmr": 1649 }.
func (h *Handler) calculateBMR(c *gin.Context) {
	var in nutrition.BiometricInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	bmr, err := measured("bmr", func() (int, error) {
		return nutrition.CalculateBMR(in, h.requestLogger(c))
	})
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bmr": bmr})
}

// calculateTDEE handles POST /api/nutrition/tdee.
// Body: { bmr, activity_level } → { "tdee": 2338 }.
func (h *Handler) calculateTDEE(c *gin.Context) {
	var req tdeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	tdee, err := measured("tdee", func() (int, error) {
		return nutrition.CalculateTDEE(req.BMR, req.ActivityLevel, h.requestLogger(c))
	})
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tdee": tdee})
}

// calculateMacros handles POST /api/nutrition/macros.
// Body: { tdee, goals } → { protein_g, carbs_g, fat_g, calories }.
func (h *Handler) calculateMacros(c *gin.Context) {
	var req macrosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	macros, err := measured("macros", func() (nutrition.MacroResult, error) {
		return nutrition.CalculateMacros(req.TDEE, req.Goals, h.requestLogger(c))
	})
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, macros)
}

// calculatePlan handles POST /api/nutrition/plan, running BMR → TDEE → macros
// in one call. Body: { biometrics, activity_level, goals }.
func (h *Handler) calculatePlan(c *gin.Context) {
	var req nutrition.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := measured("plan", func() (nutrition.Plan, error) {
		return nutrition.CalculatePlan(req, h.requestLogger(c))
	})
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

/* ─── Conversions ────────────────────────────────────────────────────── */

// convertHeight handles POST /api/convert/height.
// Body: { value, from, to } where value is any height wire shape.
// Response: { value, display }. display is omitted when to isn't a unit system.
func (h *Handler) convertHeight(c *gin.Context) {
	var req convertHeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Value.Kind == nutrition.HeightMalformed {
		apiError(c, http.StatusBadRequest, "value must be a number or an object with feet and inches")
		return
	}

	out, err := measured("convert_height", func() (nutrition.Height, error) {
		return nutrition.ConvertHeight(req.Value, req.From, req.To)
	})
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	resp := gin.H{"value": out}
	resolved, _ := out.Resolve(req.To)
	if cm, ok := resolved.CM(); ok {
		if display, err := nutrition.FormatHeight(cm, req.To); err == nil {
			resp["display"] = display
		}
	}
	c.JSON(http.StatusOK, resp)
}

// convertWeight handles POST /api/convert/weight.
// Body: { value, from, to } → { value, display }.
func (h *Handler) convertWeight(c *gin.Context) {
	var req convertWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := measured("convert_weight", func() (float64, error) {
		return nutrition.ConvertWeight(req.Value, req.From, req.To)
	})
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	resp := gin.H{"value": out}
	if display, err := nutrition.FormatWeight(out, req.To); err == nil {
		resp["display"] = display
	}
	c.JSON(http.StatusOK, resp)
}
