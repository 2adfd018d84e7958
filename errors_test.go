package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lg/stride-fitness-api/nutrition"
)

func TestStatusFor(t *testing.T) {
	_, engineErr := nutrition.ConvertWeight(-1, nutrition.Metric, nutrition.Imperial)
	require.Error(t, engineErr)

	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"engine error", engineErr, http.StatusBadRequest, "Negative value: kilograms cannot be negative"},
		{"wrapped engine error", fmt.Errorf("saving: %w", engineErr), http.StatusBadRequest, "Negative value: kilograms cannot be negative"},
		{"request error", badRequest("date is required"), http.StatusBadRequest, "date is required"},
		{"anything else", fmt.Errorf("connection reset"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := statusFor(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

// An internal error is logged server-side and never leaks its text.
func TestRespondEngineError_HidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var logs bytes.Buffer
	h := Handler{log: zerolog.New(&logs)}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.respondEngineError(c, fmt.Errorf("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]any{"error": "internal error"}, resp)
	assert.Contains(t, logs.String(), "pq: relation does not exist")
}
