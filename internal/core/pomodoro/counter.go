package pomodoro

// Counter tracks how many times each phase has completed.
type Counter struct {
	counts [phaseCount]int
}

// Increment records one completion of phase.
func (counter *Counter) Increment(phase Phase) {
	if !phase.Valid() {
		return
	}
	counter.counts[phase]++
}

// Count returns the completions recorded for phase.
func (counter Counter) Count(phase Phase) int {
	if !phase.Valid() {
		return 0
	}
	return counter.counts[phase]
}

// Working returns completed working phases.
func (counter Counter) Working() int {
	return counter.counts[PhaseWorking]
}

// ShortBreak returns completed short breaks.
func (counter Counter) ShortBreak() int {
	return counter.counts[PhaseShortBreak]
}

// LongBreak returns completed long breaks.
func (counter Counter) LongBreak() int {
	return counter.counts[PhaseLongBreak]
}
