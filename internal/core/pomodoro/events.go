package pomodoro

import (
	"sync"
	"time"
)

// EventType defines the type of Pomodoro event.
type EventType string

const (
	EventPhaseChange EventType = "phase_change"
	EventProgress    EventType = "progress"
	EventPaused      EventType = "paused"
	EventResumed     EventType = "resumed"
	EventConsumed    EventType = "consumed"
)

// Pause reasons carried in Event.Reason.
const (
	ReasonSignal   = "signal"
	ReasonStepMode = "step_mode"
)

// Event represents a Pomodoro update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Previous  Phase
	Counter   Counter
	Remaining time.Duration
	Progress  float64
	Reason    string
	At        time.Time
}

type observers struct {
	mu       sync.Mutex
	channels []chan Event
	closed   bool
}

func (obs *observers) subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	obs.mu.Lock()
	defer obs.mu.Unlock()
	if obs.closed {
		close(ch)
		return ch
	}
	obs.channels = append(obs.channels, ch)
	return ch
}

// deliveryTimeout bounds how long one emit waits on full subscribers.
const deliveryTimeout = 250 * time.Millisecond

// emit never blocks on progress events. They are dropped once a subscriber's
// buffer is half full, so the other half stays free for phase changes,
// pauses and the consumed event, which wait up to deliveryTimeout for room.
func (obs *observers) emit(event Event) {
	obs.mu.Lock()
	defer obs.mu.Unlock()

	var timer *time.Timer
	expired := false
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for _, ch := range obs.channels {
		if event.Type == EventProgress {
			if len(ch) >= progressLimit(cap(ch)) {
				continue
			}
			select {
			case ch <- event:
			default:
			}
			continue
		}

		select {
		case ch <- event:
			continue
		default:
		}
		if expired {
			continue
		}
		if timer == nil {
			timer = time.NewTimer(deliveryTimeout)
		}
		select {
		case ch <- event:
		case <-timer.C:
			expired = true
		}
	}
}

func progressLimit(capacity int) int {
	return capacity - capacity/2
}

func (obs *observers) close() {
	obs.mu.Lock()
	defer obs.mu.Unlock()
	if obs.closed {
		return
	}
	obs.closed = true
	for _, ch := range obs.channels {
		close(ch)
	}
	obs.channels = nil
}
