package preferences

import (
	"time"

	"pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	TickInterval       time.Duration
	LongBreakInterval  int
	Continuous         bool
	Until              int

	IdlePauseEnabled bool
	IdlePauseAfter   time.Duration

	MetricsAddress string
}

// DefaultSettings returns the classic 25/5/15 schedule with a long break
// after every fourth working phase.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:       25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  15 * time.Minute,
		TickInterval:       time.Second,
		LongBreakInterval:  4,
		Continuous:         true,
		Until:              0,
		IdlePauseEnabled:   false,
		IdlePauseAfter:     5 * time.Minute,
	}
}

// PomodoroConfig converts settings to PomodoroConfig.
func (settings Settings) PomodoroConfig() model.PomodoroConfig {
	return model.PomodoroConfig{
		Working: model.PhaseConfig{
			Lifespan:     settings.WorkDuration,
			TickInterval: settings.TickInterval,
		},
		ShortBreak: model.PhaseConfig{
			Lifespan:     settings.ShortBreakDuration,
			TickInterval: settings.TickInterval,
		},
		LongBreak: model.PhaseConfig{
			Lifespan:     settings.LongBreakDuration,
			TickInterval: settings.TickInterval,
		},
		LongBreakInterval: settings.LongBreakInterval,
		Continuous:        settings.Continuous,
		Until:             settings.Until,
	}
}
