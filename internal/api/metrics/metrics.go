// Package metrics defines and registers all custom Prometheus metrics for
// the back-office API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry at package load;
// the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// GateDecisionsTotal counts request-gate outcomes for non-public routes.
// Label:
//   - outcome: "allowed", "unauthenticated", or "forbidden"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of request gate decisions, labelled by outcome.",
	},
	[]string{"outcome"},
)

// ShieldBlockedTotal counts requests rejected by the abuse shield.
// Label:
//   - reason: "rate_limited" or "bot"
var ShieldBlockedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shield_blocked_total",
		Help:      "Total number of requests blocked by the shield, labelled by reason.",
	},
	[]string{"reason"},
)
