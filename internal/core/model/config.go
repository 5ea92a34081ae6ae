package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidConfig indicates a PomodoroConfig that cannot drive a timer.
var ErrInvalidConfig = errors.New("invalid pomodoro config")

// PhaseConfig defines how long a phase lasts and how finely it advances.
type PhaseConfig struct {
	Lifespan     time.Duration
	TickInterval time.Duration
}

// PomodoroConfig contains runtime settings for the Pomodoro state machine.
type PomodoroConfig struct {
	Working    PhaseConfig
	ShortBreak PhaseConfig
	LongBreak  PhaseConfig

	// LongBreakInterval is the number of completed working phases between long breaks.
	LongBreakInterval int
	// Continuous advances into the next phase without waiting for a resume.
	Continuous bool
	// Until caps the number of completed working phases. Zero disables the cap.
	Until int
}

// Validate reports every problem with the configuration at once.
func (config PomodoroConfig) Validate() error {
	var result *multierror.Error

	phases := []struct {
		name  string
		phase PhaseConfig
	}{
		{"working", config.Working},
		{"short break", config.ShortBreak},
		{"long break", config.LongBreak},
	}
	for _, entry := range phases {
		if entry.phase.Lifespan <= 0 {
			result = multierror.Append(result, fmt.Errorf("%s lifespan must be positive, got %s", entry.name, entry.phase.Lifespan))
		}
		if entry.phase.TickInterval <= 0 {
			result = multierror.Append(result, fmt.Errorf("%s tick interval must be positive, got %s", entry.name, entry.phase.TickInterval))
		}
	}

	if config.LongBreakInterval <= 0 {
		result = multierror.Append(result, fmt.Errorf("long break interval must be positive, got %d", config.LongBreakInterval))
	}
	if config.Until < 0 {
		result = multierror.Append(result, fmt.Errorf("working cycle cap must not be negative, got %d", config.Until))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
