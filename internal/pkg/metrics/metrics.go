// Package metrics exposes lifecycle counters to Prometheus.
package metrics

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/lifecycle"

	"github.com/prometheus/client_golang/prometheus"
)

// Rejection reasons used as the reason label.
const (
	ReasonInvalidTransition = "invalid_transition"
	ReasonMissingRider      = "missing_rider"
	ReasonQuantityExceeded  = "quantity_exceeded"
	ReasonRiderUnavailable  = "rider_unavailable"
	ReasonOther             = "other"
)

// Recorder counts committed and rejected status transitions and dispatch runs.
// It implements ports.EventPublisher so the unit of work feeds it committed
// changes.
type Recorder struct {
	transitions  *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	dispatchRuns *prometheus.CounterVec
}

// NewRecorder registers the counters on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "status_transitions_total",
			Help:      "Committed status transitions.",
		}, []string{"kind", "from", "to"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "status_transitions_rejected_total",
			Help:      "Status change requests refused by lifecycle rules.",
		}, []string{"kind", "reason"}),
		dispatchRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "dispatch_runs_total",
			Help:      "Rider dispatch job runs by outcome.",
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{r.transitions, r.rejections, r.dispatchRuns} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Publish counts committed transitions. It never fails.
func (r *Recorder) Publish(_ context.Context, events ...lifecycle.StatusChanged) error {
	for _, e := range events {
		r.transitions.WithLabelValues(e.Kind.String(), e.From, e.To).Inc()
	}
	return nil
}

// Reject counts a refused request when err is a lifecycle rule violation.
// Other errors are ignored.
func (r *Recorder) Reject(kind lifecycle.Kind, err error) {
	reason := RejectionReason(err)
	if reason == ReasonOther {
		return
	}
	r.rejections.WithLabelValues(kind.String(), reason).Inc()
}

// DispatchRun counts one dispatch job run with the given outcome.
func (r *Recorder) DispatchRun(outcome string) {
	r.dispatchRuns.WithLabelValues(outcome).Inc()
}

// RejectionReason classifies a lifecycle error.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, lifecycle.ErrMissingRiderAssignment):
		return ReasonMissingRider
	case errors.Is(err, lifecycle.ErrReceivedQuantityExceedsOrdered):
		return ReasonQuantityExceeded
	case errors.Is(err, lifecycle.ErrRiderUnavailable):
		return ReasonRiderUnavailable
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return ReasonInvalidTransition
	default:
		return ReasonOther
	}
}
