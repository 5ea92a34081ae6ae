package metrics

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"pomodoro/internal/core/pomodoro"
)

func TestPrometheusMetrics_Observe(t *testing.T) {
	pm := NewPrometheusMetrics()

	pm.Observe(pomodoro.Event{Type: pomodoro.EventResumed, Phase: pomodoro.PhaseWorking, Remaining: 25 * time.Minute})
	pm.Observe(pomodoro.Event{
		Type:      pomodoro.EventPhaseChange,
		Previous:  pomodoro.PhaseWorking,
		Phase:     pomodoro.PhaseShortBreak,
		Remaining: 5 * time.Minute,
	})
	pm.Observe(pomodoro.Event{Type: pomodoro.EventPaused, Phase: pomodoro.PhaseShortBreak, Reason: pomodoro.ReasonStepMode})

	if got := testutil.ToFloat64(pm.phaseCompletions.WithLabelValues("working")); got != 1 {
		t.Errorf("working completions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(pm.currentPhase.WithLabelValues("short_break")); got != 1 {
		t.Errorf("current short_break = %v, want 1", got)
	}
	if got := testutil.ToFloat64(pm.currentPhase.WithLabelValues("working")); got != 0 {
		t.Errorf("current working = %v, want 0", got)
	}
	if got := testutil.ToFloat64(pm.paused); got != 1 {
		t.Errorf("paused = %v, want 1", got)
	}
	if got := testutil.ToFloat64(pm.pausesTotal.WithLabelValues(pomodoro.ReasonStepMode)); got != 1 {
		t.Errorf("step mode pauses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(pm.remainingSeconds); got != 0 {
		t.Errorf("remaining = %v, want 0 from the paused event", got)
	}
}

func TestPrometheusMetrics_ConsumeStopsOnClose(t *testing.T) {
	pm := NewPrometheusMetrics()
	events := make(chan pomodoro.Event, 2)
	events <- pomodoro.Event{Type: pomodoro.EventResumed}
	events <- pomodoro.Event{Type: pomodoro.EventConsumed}
	close(events)

	pm.Consume(context.Background(), events)

	if got := testutil.ToFloat64(pm.consumed); got != 1 {
		t.Errorf("consumed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(pm.paused); got != 0 {
		t.Errorf("paused = %v, want 0", got)
	}
}

func TestHandler_ServesRegisteredMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(NewPrometheusMetrics())

	count, err := testutil.GatherAndCount(registry, "pomodoro_phase_completions_total")
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}
	if count != 3 {
		t.Errorf("pomodoro_phase_completions_total series = %d, want 3", count)
	}

	recorder := httptest.NewRecorder()
	Handler(registry).ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(recorder.Body.String(), "pomodoro_current_phase") {
		t.Error("handler output missing pomodoro_current_phase")
	}
}
