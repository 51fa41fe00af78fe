// Package metrics defines and registers all custom Prometheus metrics for
// the booking API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successful account creations.
// Label:
//   - role: the role assigned to the new account ("admin" or "staff")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// SigninsTotal counts signin attempts.
// Label:
//   - result: "success" or "failure" (wrong password and unknown username
//     are deliberately indistinguishable)
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of signin attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token checks in the auth middleware.
// Label:
//   - result: "success", "expired", or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// MutationsTotal counts successful create/update/delete operations.
// Labels:
//   - resource: "venue", "show", or "band"
//   - action: "create", "update", or "delete"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of successful resource mutations.",
	},
	[]string{"resource", "action"},
)

// ListCacheTotal counts list-cache lookups for the public index endpoints.
// Labels:
//   - resource: "venue", "show", or "band"
//   - result: "hit" or "miss"
var ListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_cache_total",
		Help:      "Total number of list cache lookups, labelled by result (hit/miss).",
	},
	[]string{"resource", "result"},
)
