// Package metrics provides Prometheus instrumentation for moderation and the
// writing assistant.
package metrics

import (
	"net/http"
	"time"

	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values for the kind of moderated content
const (
	KindPost    = "post"
	KindComment = "comment"
	KindRewrite = "rewrite"
)

// Label values for the classification target
const (
	TargetText  = "text"
	TargetImage = "image"
)

var (
	// ModerationDecisions counts verdicts, labeled by content kind and decision
	ModerationDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postwave_moderation_decisions_total",
		Help: "Total number of moderation verdicts",
	}, []string{"kind", "decision"})

	// ClassificationFailures counts failed content safety calls
	ClassificationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postwave_classification_failures_total",
		Help: "Total number of failed content safety calls",
	}, []string{"target"})

	// ClassificationDuration records the latency of content safety calls
	ClassificationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "postwave_classification_duration_seconds",
		Help:    "Content safety call latency in seconds",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"target"})

	// AIRequests counts writing assistant calls by type and status
	AIRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postwave_ai_requests_total",
		Help: "Total number of writing assistant requests",
	}, []string{"type", "status"})
)

func init() {
	prometheus.MustRegister(
		ModerationDecisions,
		ClassificationFailures,
		ClassificationDuration,
		AIRequests,
	)
}

// ObserveDecision records a verdict for the content kind
func ObserveDecision(kind string, decision types.Decision) {
	ModerationDecisions.WithLabelValues(kind, decision.String()).Inc()
}

// ObserveClassification records the latency and outcome of one call
func ObserveClassification(target string, started time.Time, err error) {
	ClassificationDuration.WithLabelValues(target).Observe(time.Since(started).Seconds())
	if err != nil {
		ClassificationFailures.WithLabelValues(target).Inc()
	}
}

// ObserveAIRequest records an assistant call
func ObserveAIRequest(reqType types.AIRequestType, status types.AIRequestStatus) {
	AIRequests.WithLabelValues(reqType.String(), status.String()).Inc()
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
