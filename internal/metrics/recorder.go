// Package metrics counts rendered outcomes with Prometheus collectors.
package metrics

import (
	"fmt"

	"github.com/aretw0/live/pkg/callback"
	"github.com/aretw0/live/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the live_* collectors.
type Recorder struct {
	Outcomes *prometheus.CounterVec
	Plays    prometheus.Counter
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		Outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "live_task_outcomes_total",
				Help: "Per-host task outcomes rendered, by status and action.",
			},
			[]string{"status", "action"},
		),
		Plays: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "live_plays_total",
			Help: "Plays started.",
		}),
	}

	for _, c := range []prometheus.Collector{r.Outcomes, r.Plays} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return r, nil
}

// Hooks returns callback hooks feeding the collectors. Item outcomes are
// counted like host outcomes.
func (r *Recorder) Hooks() callback.Hooks {
	return callback.Hooks{
		OnPlayStart: func(*domain.Play) {
			r.Plays.Inc()
		},
		OnOutcome: func(o domain.Outcome) {
			r.Outcomes.WithLabelValues(string(o.Status), o.Action).Inc()
		},
	}
}
