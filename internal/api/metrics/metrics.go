// Package metrics defines and registers the custom Prometheus metrics for
// the back-office API. It is the single source of truth for metric names,
// labels, and help strings. Request-level latency/status metrics come from
// the echoprometheus middleware; everything here is domain-level.
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
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful self-service registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// ResourceMutationsTotal counts admin writes against the managed catalogs.
// Labels:
//   - resource: the catalog name (e.g. "scholarships")
//   - action: "create", "update" or "delete"
var ResourceMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_mutations_total",
		Help:      "Total number of successful admin mutations, by resource and action.",
	},
	[]string{"resource", "action"},
)

// PublicCacheTotal counts public-listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var PublicCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "public_cache_total",
		Help:      "Total number of public response cache lookups, by result.",
	},
	[]string{"result"},
)
