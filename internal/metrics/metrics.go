// Package metrics counts league operations by outcome.
package metrics

import (
	"errors"

	"github.com/YusovID/racing-league/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK           = "ok"
	OutcomeRequired     = "required"
	OutcomeMalformed    = "malformed"
	OutcomeDuplicate    = "duplicate"
	OutcomeConflict     = "conflict"
	OutcomePrecondition = "precondition"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)

// Recorder is safe to use as a nil pointer; it then records nothing.
type Recorder struct {
	operations *prometheus.CounterVec
}

// New registers the league counters on reg.
func New(reg prometheus.Registerer) *Recorder {
	return &Recorder{
		operations: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "league",
				Name:      "operations_total",
				Help:      "Total number of league operations by outcome",
			},
			[]string{"op", "outcome"},
		),
	}
}

// Observe counts one run of op that finished with err.
func (r *Recorder) Observe(op string, err error) {
	if r == nil {
		return
	}

	r.operations.WithLabelValues(op, Outcome(err)).Inc()
}

// Outcome maps an error onto its outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, apperrors.ErrRequired):
		return OutcomeRequired
	case errors.Is(err, apperrors.ErrMalformed):
		return OutcomeMalformed
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return OutcomeDuplicate
	case errors.Is(err, apperrors.ErrConflict):
		return OutcomeConflict
	case errors.Is(err, apperrors.ErrPrecondition):
		return OutcomePrecondition
	case errors.Is(err, apperrors.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
