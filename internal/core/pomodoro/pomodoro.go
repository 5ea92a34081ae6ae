package pomodoro

import (
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Config contains runtime options for Pomodoro.
type Config struct {
	Logger  *slog.Logger
	Sleeper Sleeper
}

// Snapshot is a consistent view of the machine taken under its lock.
type Snapshot struct {
	Phase     Phase
	Counter   Counter
	Elapsed   time.Duration
	Remaining time.Duration
	Progress  float64
	Paused    bool
	Consumed  bool
}

// Pomodoro is a state machine cycling through working, short break and
// long break phases.
type Pomodoro struct {
	// mu guards clocks, counter and current. The paused flag has its own lock.
	mu                sync.RWMutex
	clocks            [phaseCount]*Clock
	counter           Counter
	current           Phase
	longBreakInterval int
	continuous        bool
	until             int

	paused  *pauseFlag
	sleeper Sleeper
	logger  *slog.Logger
	events  observers
}

// New creates a paused Pomodoro in the working phase.
func New(config model.PomodoroConfig, options Config) (*Pomodoro, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.Sleeper == nil {
		options.Sleeper = timerSleeper{}
	}

	machine := &Pomodoro{
		longBreakInterval: config.LongBreakInterval,
		continuous:        config.Continuous,
		until:             config.Until,
		current:           PhaseWorking,
		paused:            newPauseFlag(),
		sleeper:           options.Sleeper,
		logger:            options.Logger,
	}
	machine.clocks[PhaseWorking] = NewClock(config.Working.Lifespan, config.Working.TickInterval)
	machine.clocks[PhaseShortBreak] = NewClock(config.ShortBreak.Lifespan, config.ShortBreak.TickInterval)
	machine.clocks[PhaseLongBreak] = NewClock(config.LongBreak.Lifespan, config.LongBreak.TickInterval)
	return machine, nil
}

// Subscribe registers a new observer channel.
func (machine *Pomodoro) Subscribe(buffer int) <-chan Event {
	return machine.events.subscribe(buffer)
}

// CurrentPhase returns the active phase.
func (machine *Pomodoro) CurrentPhase() Phase {
	machine.mu.RLock()
	defer machine.mu.RUnlock()
	return machine.current
}

// Counter returns a copy of the completion counts.
func (machine *Pomodoro) Counter() Counter {
	machine.mu.RLock()
	defer machine.mu.RUnlock()
	return machine.counter
}

// Continuous reports whether phases auto-advance.
func (machine *Pomodoro) Continuous() bool {
	return machine.continuous
}

// Snapshot returns the current state.
func (machine *Pomodoro) Snapshot() Snapshot {
	machine.mu.RLock()
	defer machine.mu.RUnlock()
	clock := machine.currentClockLocked()
	return Snapshot{
		Phase:     machine.current,
		Counter:   machine.counter,
		Elapsed:   clock.Elapsed(),
		Remaining: clock.Remaining(),
		Progress:  clock.Progress(),
		Paused:    machine.paused.isPaused(),
		Consumed:  machine.isConsumedLocked(),
	}
}

// IsConsumed reports whether the working cycle cap has been reached.
func (machine *Pomodoro) IsConsumed() bool {
	machine.mu.RLock()
	defer machine.mu.RUnlock()
	return machine.isConsumedLocked()
}

// IsActive reports whether the machine is not paused.
func (machine *Pomodoro) IsActive() bool {
	return !machine.paused.isPaused()
}

// Pause stops forward progress at the next loop iteration.
func (machine *Pomodoro) Pause() {
	machine.pause(ReasonSignal)
}

// Resume clears the paused flag.
func (machine *Pomodoro) Resume() {
	if !machine.paused.resume() {
		return
	}
	machine.logger.Info("pomodoro resumed")
	machine.emit(EventResumed, "")
}

func (machine *Pomodoro) pause(reason string) {
	if !machine.paused.pause() {
		return
	}
	machine.logger.Info("pomodoro paused", "reason", reason)
	machine.emit(EventPaused, reason)
}

func (machine *Pomodoro) isConsumedLocked() bool {
	return machine.until > 0 && machine.counter.Working() >= machine.until
}

func (machine *Pomodoro) currentClockLocked() *Clock {
	return machine.clocks[machine.current]
}

func (machine *Pomodoro) reachedLongBreakLocked() bool {
	working := machine.counter.Working()
	return working > 0 && working%machine.longBreakInterval == 0
}

func (machine *Pomodoro) nextPhaseLocked() Phase {
	if !machine.currentClockLocked().IsDone() {
		return machine.current
	}
	if machine.current != PhaseLongBreak && machine.reachedLongBreakLocked() {
		return PhaseLongBreak
	}
	return machine.current.following()
}

// nextCycle records the completion of the current phase and moves on.
// The clock being left is reset so the phase starts fresh next time.
func (machine *Pomodoro) nextCycle() {
	machine.mu.Lock()
	previous := machine.current
	machine.counter.Increment(previous)
	next := machine.nextPhaseLocked()
	machine.currentClockLocked().Reset()
	machine.current = next
	event := machine.eventLocked(EventPhaseChange, "")
	event.Previous = previous
	machine.mu.Unlock()

	machine.logger.Info("phase complete",
		"completed", previous.String(),
		"next", next.String(),
		"working", event.Counter.Working(),
		"short_break", event.Counter.ShortBreak(),
		"long_break", event.Counter.LongBreak(),
	)
	machine.events.emit(event)
}

func (machine *Pomodoro) currentClockDone() bool {
	machine.mu.RLock()
	defer machine.mu.RUnlock()
	return machine.currentClockLocked().IsDone()
}

func (machine *Pomodoro) currentTickInterval() time.Duration {
	machine.mu.RLock()
	defer machine.mu.RUnlock()
	return machine.currentClockLocked().TickInterval()
}

func (machine *Pomodoro) proceed() {
	machine.mu.Lock()
	machine.currentClockLocked().Tick()
	event := machine.eventLocked(EventProgress, "")
	machine.mu.Unlock()

	machine.logger.Debug("tick", "phase", event.Phase.String(), "remaining", event.Remaining)
	machine.events.emit(event)
}

func (machine *Pomodoro) emit(eventType EventType, reason string) {
	machine.mu.RLock()
	event := machine.eventLocked(eventType, reason)
	machine.mu.RUnlock()
	machine.events.emit(event)
}

func (machine *Pomodoro) eventLocked(eventType EventType, reason string) Event {
	clock := machine.currentClockLocked()
	return Event{
		Type:      eventType,
		Phase:     machine.current,
		Previous:  machine.current,
		Counter:   machine.counter,
		Remaining: clock.Remaining(),
		Progress:  clock.Progress(),
		Reason:    reason,
		At:        time.Now(),
	}
}
