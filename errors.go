package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/stride-fitness-api/nutrition"
)

// requestError is a caller-layer validation failure whose message is safe to
// return to the client.
type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func badRequest(msg string) error { return &requestError{msg: msg} }

// statusFor maps an error to an HTTP status and the message the client sees.
// Engine and request validation errors keep their literal text; anything else
// is hidden behind a generic 500.
func statusFor(err error) (int, string) {
	var engineErr *nutrition.Error
	if errors.As(err, &engineErr) {
		return http.StatusBadRequest, engineErr.Message
	}
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest, reqErr.msg
	}
	return http.StatusInternalServerError, "internal error"
}

// respondEngineError writes err as a JSON error response. Engine failures
// also carry their kind and field so clients can branch without parsing text.
func (h *Handler) respondEngineError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("route", c.FullPath()).Msg("request failed")
		apiError(c, status, msg)
		return
	}

	var engineErr *nutrition.Error
	if errors.As(err, &engineErr) {
		c.JSON(status, gin.H{
			"error": msg,
			"kind":  engineErr.Kind.String(),
			"field": engineErr.Field,
		})
		return
	}
	apiError(c, status, msg)
}
