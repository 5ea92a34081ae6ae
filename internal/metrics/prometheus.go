package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pomodoro/internal/core/pomodoro"
)

// PrometheusMetrics exports timer progress derived from Pomodoro events.
type PrometheusMetrics struct {
	phaseCompletions *prometheus.CounterVec
	currentPhase     *prometheus.GaugeVec
	pausesTotal      *prometheus.CounterVec
	paused           prometheus.Gauge
	remainingSeconds prometheus.Gauge
	consumed         prometheus.Gauge
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance.
func NewPrometheusMetrics() *PrometheusMetrics {
	pm := &PrometheusMetrics{
		phaseCompletions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pomodoro_phase_completions_total",
				Help: "Total number of completed phases by phase",
			},
			[]string{"phase"},
		),
		currentPhase: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pomodoro_current_phase",
				Help: "Active phase (1 for the current phase, 0 otherwise)",
			},
			[]string{"phase"},
		),
		pausesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pomodoro_pauses_total",
				Help: "Total number of pauses by reason",
			},
			[]string{"reason"},
		),
		paused: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pomodoro_paused",
			Help: "Whether the timer is paused (1) or running (0)",
		}),
		remainingSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pomodoro_phase_remaining_seconds",
			Help: "Seconds left in the current phase",
		}),
		consumed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pomodoro_consumed",
			Help: "Whether the working cycle cap has been reached",
		}),
	}

	for _, phase := range pomodoro.Phases() {
		pm.phaseCompletions.WithLabelValues(phase.String())
		pm.currentPhase.WithLabelValues(phase.String()).Set(0)
	}
	pm.currentPhase.WithLabelValues(pomodoro.PhaseWorking.String()).Set(1)
	pm.paused.Set(1)

	return pm
}

// Describe implements prometheus.Collector.
func (pm *PrometheusMetrics) Describe(ch chan<- *prometheus.Desc) {
	pm.phaseCompletions.Describe(ch)
	pm.currentPhase.Describe(ch)
	pm.pausesTotal.Describe(ch)
	pm.paused.Describe(ch)
	pm.remainingSeconds.Describe(ch)
	pm.consumed.Describe(ch)
}

// Collect implements prometheus.Collector.
func (pm *PrometheusMetrics) Collect(ch chan<- prometheus.Metric) {
	pm.phaseCompletions.Collect(ch)
	pm.currentPhase.Collect(ch)
	pm.pausesTotal.Collect(ch)
	pm.paused.Collect(ch)
	pm.remainingSeconds.Collect(ch)
	pm.consumed.Collect(ch)
}

// Observe updates metrics from a single event.
func (pm *PrometheusMetrics) Observe(event pomodoro.Event) {
	switch event.Type {
	case pomodoro.EventPhaseChange:
		pm.phaseCompletions.WithLabelValues(event.Previous.String()).Inc()
		pm.setCurrentPhase(event.Phase)
	case pomodoro.EventPaused:
		pm.paused.Set(1)
		pm.pausesTotal.WithLabelValues(event.Reason).Inc()
	case pomodoro.EventResumed:
		pm.paused.Set(0)
	case pomodoro.EventConsumed:
		pm.consumed.Set(1)
	}
	pm.remainingSeconds.Set(event.Remaining.Seconds())
}

// Consume observes events until the channel closes or ctx is done.
func (pm *PrometheusMetrics) Consume(ctx context.Context, events <-chan pomodoro.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			pm.Observe(event)
		}
	}
}

func (pm *PrometheusMetrics) setCurrentPhase(current pomodoro.Phase) {
	for _, phase := range pomodoro.Phases() {
		value := 0.0
		if phase == current {
			value = 1
		}
		pm.currentPhase.WithLabelValues(phase.String()).Set(value)
	}
}

// Handler serves the metrics registered in registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
