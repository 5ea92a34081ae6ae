package pomodoro

import (
	"testing"
	"time"
)

func TestClock_TickResetDone(t *testing.T) {
	clock := NewClock(2*time.Second, time.Second)

	if clock.Elapsed() != 0 {
		t.Fatalf("Elapsed() = %v, want 0", clock.Elapsed())
	}
	clock.Tick()
	if clock.IsDone() {
		t.Error("IsDone() = true after one of two ticks")
	}
	if clock.Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v, want 1s", clock.Elapsed())
	}
	clock.Tick()
	if !clock.IsDone() {
		t.Error("IsDone() = false after two of two ticks")
	}
	clock.Reset()
	if clock.Elapsed() != 0 {
		t.Errorf("Elapsed() after Reset() = %v, want 0", clock.Elapsed())
	}
	if clock.IsDone() {
		t.Error("IsDone() = true after Reset()")
	}
}

func TestClock_DoneAfterCeilTicks(t *testing.T) {
	tests := []struct {
		lifespan time.Duration
		tick     time.Duration
		ticks    int
	}{
		{lifespan: 5 * time.Millisecond, tick: 2 * time.Millisecond, ticks: 3},
		{lifespan: 6 * time.Millisecond, tick: 2 * time.Millisecond, ticks: 3},
		{lifespan: time.Microsecond, tick: time.Microsecond, ticks: 1},
		{lifespan: time.Minute, tick: 7 * time.Second, ticks: 9},
	}

	for _, tt := range tests {
		clock := NewClock(tt.lifespan, tt.tick)
		for i := 0; i < tt.ticks-1; i++ {
			clock.Tick()
		}
		if clock.IsDone() {
			t.Errorf("lifespan %v tick %v: done after %d ticks, want %d", tt.lifespan, tt.tick, tt.ticks-1, tt.ticks)
		}
		clock.Tick()
		if !clock.IsDone() {
			t.Errorf("lifespan %v tick %v: not done after %d ticks", tt.lifespan, tt.tick, tt.ticks)
		}
		if want := time.Duration(tt.ticks) * tt.tick; clock.Elapsed() != want {
			t.Errorf("Elapsed() = %v, want %v", clock.Elapsed(), want)
		}
	}
}

func TestClock_TickPastDone(t *testing.T) {
	clock := NewClock(3*time.Second, 2*time.Second)
	clock.Tick()
	clock.Tick()

	if clock.Elapsed() != 4*time.Second {
		t.Errorf("Elapsed() = %v, want 4s", clock.Elapsed())
	}
	if clock.Remaining() != 0 {
		t.Errorf("Remaining() = %v, want 0", clock.Remaining())
	}
	if clock.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", clock.Progress())
	}
}

func TestClock_RemainingAndProgress(t *testing.T) {
	clock := NewClock(4*time.Second, time.Second)
	clock.Tick()

	if clock.Remaining() != 3*time.Second {
		t.Errorf("Remaining() = %v, want 3s", clock.Remaining())
	}
	if clock.Progress() != 0.25 {
		t.Errorf("Progress() = %v, want 0.25", clock.Progress())
	}
}
