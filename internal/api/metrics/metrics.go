// Package metrics defines and registers all custom Prometheus metrics for the
// dashboard gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts session restore attempts on guarded requests.
// Label:
//   - result: "authenticated", "anonymous", or "corrupt" (stored record purged)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, by result.",
	},
	[]string{"result"},
)

// SessionTeardownsTotal counts forced session teardowns after the upstream
// reported a request unauthorized.
var SessionTeardownsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_teardowns_total",
		Help:      "Total number of sessions force-cleared after an upstream 401.",
	},
)

// ── Order workflow metrics ────────────────────────────────────────────────────

// OrderTransitionsTotal counts confirmed order status transitions.
// Labels:
//   - from: the prior status (e.g. "PENDIENTE")
//   - to:   the new status (e.g. "PREPARANDO")
var OrderTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Total number of order status transitions confirmed by the upstream.",
	},
	[]string{"from", "to"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// ForbiddenBlocksTotal counts mutations blocked client-side because the
// caller lacked the admin role. No upstream request is issued for these.
// Label:
//   - resource: "clients", "products", "orders", or "employees"
var ForbiddenBlocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_blocks_total",
		Help:      "Total number of mutations blocked before any upstream call due to missing admin role.",
	},
	[]string{"resource"},
)

// UpstreamRequestsTotal counts proxied requests to the restaurant API.
// Labels:
//   - resource: "auth", "clients", "products", "orders", or "employees"
//   - outcome:  "ok", "unauthorized", "forbidden", "not_found", or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests proxied to the upstream restaurant API, by outcome.",
	},
	[]string{"resource", "outcome"},
)
