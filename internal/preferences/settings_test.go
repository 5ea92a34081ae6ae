package preferences

import (
	"testing"
	"time"
)

func TestDefaultSettings_ProduceValidConfig(t *testing.T) {
	config := DefaultSettings().PomodoroConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if config.Working.Lifespan != 25*time.Minute {
		t.Errorf("Working.Lifespan = %v, want 25m", config.Working.Lifespan)
	}
	if config.LongBreakInterval != 4 {
		t.Errorf("LongBreakInterval = %d, want 4", config.LongBreakInterval)
	}
}

func TestPomodoroConfig_SharesTickInterval(t *testing.T) {
	settings := DefaultSettings()
	settings.TickInterval = 250 * time.Millisecond
	settings.Until = 6
	settings.Continuous = false

	config := settings.PomodoroConfig()
	for name, phase := range map[string]time.Duration{
		"working":     config.Working.TickInterval,
		"short break": config.ShortBreak.TickInterval,
		"long break":  config.LongBreak.TickInterval,
	} {
		if phase != 250*time.Millisecond {
			t.Errorf("%s tick = %v, want 250ms", name, phase)
		}
	}
	if config.Until != 6 || config.Continuous {
		t.Errorf("Until/Continuous = %d/%v, want 6/false", config.Until, config.Continuous)
	}
}
