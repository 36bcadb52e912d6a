// Package metrics defines and registers all custom Prometheus metrics for the
// warehouse API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto; the echoprometheus middleware adds per-route HTTP metrics on
// top of these.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "warehouse"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RoleAssignmentsTotal counts role changes applied through the users screen.
// Label:
//   - role: the role assigned (e.g. "WAREHOUSE")
var RoleAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_assignments_total",
		Help:      "Total number of successful role assignments, by target role.",
	},
	[]string{"role"},
)

// ── Inventory metrics ─────────────────────────────────────────────────────────

// ItemsCreatedTotal counts newly created inventory items.
var ItemsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of inventory items created.",
	},
)

// TasksCreatedTotal counts newly created production tasks.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of production tasks created.",
	},
)

// NomenclatureCacheTotal counts autocomplete cache lookups.
// Label:
//   - result: "hit" or "miss"
var NomenclatureCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nomenclature_cache_total",
		Help:      "Total number of nomenclature cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Activity log metrics ──────────────────────────────────────────────────────

// ActivityQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityErrorsTotal counts activity events that failed to persist.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity events that failed to persist.",
	},
)

// ActivityDroppedTotal counts events dropped because a worker buffer was full.
var ActivityDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of activity events dropped due to full worker buffers.",
	},
)

// ActivityProcessingDuration measures how long one event takes from dequeue to
// persistence.
var ActivityProcessingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_processing_duration_seconds",
		Help:      "Duration of activity event persistence from dequeue to insert.",
		Buckets:   prometheus.DefBuckets,
	},
)
