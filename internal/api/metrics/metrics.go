// Package metrics defines and registers all custom Prometheus metrics for the
// task service. It is the single source of truth for metric names, labels,
// and help strings. Metrics are registered with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskhub"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFaultsTotal counts bearer tokens rejected during principal resolution.
// Label:
//   - reason: "malformed", "bad_signature", or "expired"
var AuthFaultsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_faults_total",
		Help:      "Total number of bearer tokens rejected, by fault reason.",
	},
	[]string{"reason"},
)

// TokensIssuedTotal counts signed tokens handed out.
// Label:
//   - flow: "login", "external_login", or "promotion"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of tokens issued, by issuing flow.",
	},
	[]string{"flow"},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts tasks created, labelled by the owner's role at
// creation time.
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by owner role.",
	},
	[]string{"role"},
)

// QuotaRejectionsTotal counts creation attempts blocked by the Standard-role
// write quota.
var QuotaRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quota_rejections_total",
		Help:      "Total number of task creations rejected by the write quota.",
	},
)

// AuditQueueDepth tracks the number of auth events waiting in each dispatcher
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of auth events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
