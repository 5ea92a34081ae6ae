package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/platform"
	"pomodoro/internal/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Durations are stored in time.ParseDuration form, e.g. "25m" or "90s".
type yamlSettings struct {
	Work              string `yaml:"work,omitempty"`
	ShortBreak        string `yaml:"short_break,omitempty"`
	LongBreak         string `yaml:"long_break,omitempty"`
	Tick              string `yaml:"tick,omitempty"`
	LongBreakInterval int    `yaml:"long_break_interval"`
	Continuous        *bool  `yaml:"continuous,omitempty"`
	Until             int    `yaml:"until"`
	IdlePauseEnabled  bool   `yaml:"idle_pause_enabled"`
	IdlePauseAfter    string `yaml:"idle_pause_after,omitempty"`
	MetricsAddress    string `yaml:"metrics_address,omitempty"`
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return preferences.DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := EncodeSettings(settings)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// EncodeSettings renders settings in the settings file format.
func EncodeSettings(settings preferences.Settings) ([]byte, error) {
	continuous := settings.Continuous
	fileData := yamlSettings{
		Work:              settings.WorkDuration.String(),
		ShortBreak:        settings.ShortBreakDuration.String(),
		LongBreak:         settings.LongBreakDuration.String(),
		Tick:              settings.TickInterval.String(),
		LongBreakInterval: settings.LongBreakInterval,
		Continuous:        &continuous,
		Until:             settings.Until,
		IdlePauseEnabled:  settings.IdlePauseEnabled,
		IdlePauseAfter:    settings.IdlePauseAfter.String(),
		MetricsAddress:    settings.MetricsAddress,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) error {
	durations := []struct {
		key    string
		value  string
		target *time.Duration
	}{
		{key: "work", value: fileData.Work, target: &settings.WorkDuration},
		{key: "short_break", value: fileData.ShortBreak, target: &settings.ShortBreakDuration},
		{key: "long_break", value: fileData.LongBreak, target: &settings.LongBreakDuration},
		{key: "tick", value: fileData.Tick, target: &settings.TickInterval},
		{key: "idle_pause_after", value: fileData.IdlePauseAfter, target: &settings.IdlePauseAfter},
	}
	for _, duration := range durations {
		if duration.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(duration.value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", duration.key, err)
		}
		if parsed > 0 {
			*duration.target = parsed
		}
	}

	if fileData.LongBreakInterval > 0 {
		settings.LongBreakInterval = fileData.LongBreakInterval
	}
	if fileData.Continuous != nil {
		settings.Continuous = *fileData.Continuous
	}
	if fileData.Until >= 0 {
		settings.Until = fileData.Until
	}

	settings.IdlePauseEnabled = fileData.IdlePauseEnabled
	settings.MetricsAddress = fileData.MetricsAddress
	return nil
}
