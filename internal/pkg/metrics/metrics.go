// Package metrics defines all custom Prometheus metrics for the records
// dashboard. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pghd_dashboard"

// BackendRequestsTotal counts outbound calls to the records backend.
// Labels:
//   - endpoint: logical operation name (e.g. "doctor_requests")
//   - code: HTTP status returned by the backend, or "error" on transport failure
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of outbound requests to the records backend.",
	},
	[]string{"endpoint", "code"},
)

// BackendRequestDuration measures outbound call latency per endpoint.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of outbound requests to the records backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// TokenRefreshesTotal counts refresh-token exchanges.
// Label:
//   - result: "ok" or "failed"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of access-token refresh exchanges.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts through the dashboard.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts.",
	},
	[]string{"result"},
)
