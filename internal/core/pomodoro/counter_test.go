package pomodoro

import "testing"

func TestCounter_Increment(t *testing.T) {
	var counter Counter

	counter.Increment(PhaseWorking)
	counter.Increment(PhaseWorking)
	counter.Increment(PhaseShortBreak)
	counter.Increment(Phase(42))

	if counter.Working() != 2 {
		t.Errorf("Working() = %d, want 2", counter.Working())
	}
	if counter.ShortBreak() != 1 {
		t.Errorf("ShortBreak() = %d, want 1", counter.ShortBreak())
	}
	if counter.LongBreak() != 0 {
		t.Errorf("LongBreak() = %d, want 0", counter.LongBreak())
	}
	if counter.Count(Phase(42)) != 0 {
		t.Errorf("Count(invalid) = %d, want 0", counter.Count(Phase(42)))
	}
}

func TestPhase_StringRoundTrip(t *testing.T) {
	for _, phase := range Phases() {
		parsed, err := ParsePhase(phase.String())
		if err != nil {
			t.Fatalf("ParsePhase(%q) error: %v", phase.String(), err)
		}
		if parsed != phase {
			t.Errorf("ParsePhase(%q) = %v, want %v", phase.String(), parsed, phase)
		}
	}

	if _, err := ParsePhase("lunch"); err == nil {
		t.Error("ParsePhase(lunch) = nil error, want error")
	}
}

func TestPhase_Following(t *testing.T) {
	tests := map[Phase]Phase{
		PhaseWorking:    PhaseShortBreak,
		PhaseShortBreak: PhaseWorking,
		PhaseLongBreak:  PhaseWorking,
	}
	for phase, want := range tests {
		if got := phase.following(); got != want {
			t.Errorf("%v.following() = %v, want %v", phase, got, want)
		}
	}
}
