package pomodoro

import "fmt"

// Phase identifies one step of the work/break cycle.
type Phase int

const (
	PhaseWorking Phase = iota
	PhaseShortBreak
	PhaseLongBreak

	phaseCount
)

// Phases returns every phase in cycle order.
func Phases() []Phase {
	return []Phase{PhaseWorking, PhaseShortBreak, PhaseLongBreak}
}

// ParsePhase converts the String form back into a Phase.
func ParsePhase(value string) (Phase, error) {
	for _, phase := range Phases() {
		if phase.String() == value {
			return phase, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", value)
}

func (phase Phase) String() string {
	switch phase {
	case PhaseWorking:
		return "working"
	case PhaseShortBreak:
		return "short_break"
	case PhaseLongBreak:
		return "long_break"
	default:
		return fmt.Sprintf("phase(%d)", int(phase))
	}
}

// Valid reports whether phase is one of the three known phases.
func (phase Phase) Valid() bool {
	return phase >= PhaseWorking && phase < phaseCount
}

// following is the fixed cycle successor, without long break insertion.
func (phase Phase) following() Phase {
	if phase == PhaseWorking {
		return PhaseShortBreak
	}
	return PhaseWorking
}
