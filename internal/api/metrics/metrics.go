// Package metrics defines and registers all custom Prometheus metrics for the
// chores API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto; the /metrics route is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chores"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts created accounts by role.
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// TokenValidationsTotal counts bearer-token checks performed by the auth
// filter. Externally every failure is the same 401; the label keeps the
// distinct reasons observable.
// Label:
//   - result: "ok", "missing_header", "malformed_header", "token_invalid",
//     "token_expired", "subject_not_found"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by result.",
	},
	[]string{"result"},
)

// ── Chore metrics ─────────────────────────────────────────────────────────────

// ChoresCreatedTotal counts newly created chores.
var ChoresCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chores_created_total",
		Help:      "Total number of chores created.",
	},
)

// ChoreStatusUpdatesTotal counts status transitions applied to chores.
// Label:
//   - status: the new status ("PENDING", "COMPLETED", "UNCOMPLETED")
var ChoreStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chore_status_updates_total",
		Help:      "Total number of chore status updates, by resulting status.",
	},
	[]string{"status"},
)

// ForbiddenTotal counts authorization rejections after successful
// authentication.
// Label:
//   - operation: "create_chore", "update_status", "list_chores", "register_child"
var ForbiddenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_total",
		Help:      "Total number of forbidden responses, by operation.",
	},
	[]string{"operation"},
)

// ── Activity queue metrics ────────────────────────────────────────────────────

// ActivityQueueDepth tracks the number of events waiting in each dispatcher
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityProcessingDuration measures how long persisting one activity event
// takes from dequeue to write.
var ActivityProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_processing_duration_seconds",
		Help:      "Duration of activity event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"action"},
)
