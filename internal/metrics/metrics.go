package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CanisterCallsTotal counts outbound canister calls by target and outcome
	CanisterCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ckbridge_canister_calls_total",
			Help: "Total number of outbound canister calls",
		},
		[]string{"canister", "method", "outcome"},
	)

	// CanisterCallDuration tracks how long a call takes to return a reply or reject
	CanisterCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ckbridge_canister_call_duration_seconds",
			Help:    "Canister call duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"method"},
	)

	// OperationsTotal counts bridge operations by name, asset and status
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ckbridge_operations_total",
			Help: "Total number of bridge operations",
		},
		[]string{"operation", "asset", "status"},
	)

	// ErrorsTotal counts failed canister calls by component and reject code or error variant
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ckbridge_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
