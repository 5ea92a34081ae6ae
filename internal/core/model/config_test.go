package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validConfig() PomodoroConfig {
	phase := PhaseConfig{Lifespan: time.Minute, TickInterval: time.Second}
	return PomodoroConfig{
		Working:           phase,
		ShortBreak:        phase,
		LongBreak:         phase,
		LongBreakInterval: 4,
		Continuous:        true,
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*PomodoroConfig)
		want   string
	}{
		{
			name:   "zero long break interval",
			modify: func(c *PomodoroConfig) { c.LongBreakInterval = 0 },
			want:   "long break interval must be positive",
		},
		{
			name:   "negative cap",
			modify: func(c *PomodoroConfig) { c.Until = -1 },
			want:   "working cycle cap must not be negative",
		},
		{
			name:   "zero working lifespan",
			modify: func(c *PomodoroConfig) { c.Working.Lifespan = 0 },
			want:   "working lifespan must be positive",
		},
		{
			name:   "zero short break tick",
			modify: func(c *PomodoroConfig) { c.ShortBreak.TickInterval = 0 },
			want:   "short break tick interval must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modify(&config)
			err := config.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	config := validConfig()
	config.LongBreakInterval = 0
	config.LongBreak.Lifespan = -time.Second

	err := config.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"long break interval", "long break lifespan"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %q", err, want)
		}
	}
}
