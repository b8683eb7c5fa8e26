// Package metrics defines and registers all custom Prometheus metrics for
// the FitFlow API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fitflow"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid_credentials", "pending_approval" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// AccessDeniedTotal counts authorization rejections.
// Label:
//   - stage: "role" (role gate) or "ownership" (ownership resolver)
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of denied authorization checks, by stage.",
	},
	[]string{"stage"},
)

// AccountsApprovedTotal counts admin approvals of styler/partner accounts.
var AccountsApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_approved_total",
		Help:      "Total number of accounts approved by an admin.",
	},
)

// WeatherCacheTotal counts weather cache lookups.
// Label:
//   - result: "hit" or "miss"
var WeatherCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weather_cache_total",
		Help:      "Total number of weather cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
