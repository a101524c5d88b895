package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds game counters
type Metrics struct {
	Turns              *prometheus.CounterVec
	Hints              *prometheus.CounterVec
	TokensAwarded      prometheus.Counter
	GenerationFailures *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
}

// New creates game metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vault_turns_total",
				Help: "Player turns processed, by phase at the start of the turn",
			},
			[]string{"phase"},
		),
		Hints: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vault_hints_total",
				Help: "Hint requests, by outcome",
			},
			[]string{"outcome"},
		),
		TokensAwarded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "vault_tokens_awarded_total",
				Help: "Tokens granted to players",
			},
		),
		GenerationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vault_generation_failures_total",
				Help: "Guardian text generation failures, by reason",
			},
			[]string{"reason"},
		),
		GenerationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vault_generation_duration_seconds",
				Help:    "Duration of guardian text generation calls",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	reg.MustRegister(m.Turns, m.Hints, m.TokensAwarded, m.GenerationFailures, m.GenerationDuration)
	return m
}

// Hint outcomes
const (
	HintGranted = "granted"
	HintEmpty   = "empty"
	HintDenied  = "denied"
)

// Generation failure reasons
const (
	ReasonTimeout  = "timeout"
	ReasonCanceled = "canceled"
	ReasonError    = "error"
)
