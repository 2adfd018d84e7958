package main

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"lg/stride-fitness-api/nutrition"
)

// Calculation metrics are registered once on the default registry and served
// from /metrics.
var (
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stride_calculations_total",
		Help: "Engine calculations by operation and outcome",
	}, []string{"operation", "outcome"})

	calculationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stride_calculation_errors_total",
		Help: "Rejected engine calls by error kind",
	}, []string{"operation", "kind"})

	calculationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stride_calculation_duration_seconds",
		Help:    "Time spent inside engine calls",
		Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
	}, []string{"operation"})
)

// observeCalculation records one engine call. Call it deferred with the
// start time and a pointer to the call's error.
func observeCalculation(operation string, start time.Time, err *error) {
	calculationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if *err == nil {
		calculationsTotal.WithLabelValues(operation, "ok").Inc()
		return
	}
	calculationsTotal.WithLabelValues(operation, "rejected").Inc()

	kind := "other"
	var engineErr *nutrition.Error
	if errors.As(*err, &engineErr) {
		kind = engineErr.Kind.String()
	}
	calculationErrorsTotal.WithLabelValues(operation, kind).Inc()
}
