package pomodoro

import "time"

// Clock accumulates fixed-size ticks against a lifespan.
// It is not safe for concurrent use; Pomodoro guards its clocks.
type Clock struct {
	lifespan     time.Duration
	tickInterval time.Duration
	elapsed      time.Duration
}

// NewClock creates a Clock with zero elapsed time.
func NewClock(lifespan, tickInterval time.Duration) *Clock {
	return &Clock{
		lifespan:     lifespan,
		tickInterval: tickInterval,
	}
}

// Reset sets the elapsed time back to zero.
func (clock *Clock) Reset() {
	clock.elapsed = 0
}

// Tick advances the clock by one tick interval.
func (clock *Clock) Tick() {
	clock.elapsed += clock.tickInterval
}

// IsDone reports whether the lifespan has been used up.
func (clock *Clock) IsDone() bool {
	return clock.elapsed >= clock.lifespan
}

// Elapsed returns the accumulated duration. It may exceed the lifespan by
// less than one tick interval.
func (clock *Clock) Elapsed() time.Duration {
	return clock.elapsed
}

// Lifespan returns how long the phase lasts.
func (clock *Clock) Lifespan() time.Duration {
	return clock.lifespan
}

// TickInterval returns the advancement granularity.
func (clock *Clock) TickInterval() time.Duration {
	return clock.tickInterval
}

// Remaining returns the time left until the clock is done, never negative.
func (clock *Clock) Remaining() time.Duration {
	if clock.elapsed >= clock.lifespan {
		return 0
	}
	return clock.lifespan - clock.elapsed
}

// Progress returns the completed fraction in [0, 1].
func (clock *Clock) Progress() float64 {
	if clock.lifespan <= 0 {
		return 1
	}
	progress := float64(clock.elapsed) / float64(clock.lifespan)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
