// Package metrics defines and registers all custom Prometheus metrics for the
// admin portal. It is the single source of truth for metric names, labels,
// and help strings. Collectors register themselves with the default registry
// via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adminportal"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure". Failures are not broken down further so
//     the metric cannot be used to enumerate which check rejected a login.
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsEstablishedTotal counts sessions created after successful logins.
// Label:
//   - role: "admin" or "customer"
var SessionsEstablishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_established_total",
		Help:      "Total number of sessions established, by role.",
	},
	[]string{"role"},
)

// AccountMutationsTotal counts lifecycle mutations applied through the admin
// tooling.
// Labels:
//   - entity: "administrator" or "customer"
//   - operation: "create", "update", or "delete"
var AccountMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_mutations_total",
		Help:      "Total number of account lifecycle mutations, by entity and operation.",
	},
	[]string{"entity", "operation"},
)
