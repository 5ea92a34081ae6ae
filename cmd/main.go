package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pomodoro/internal/preferences"
	"pomodoro/internal/storage"
)

const appName = "pomodoro"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Pomodoro timer for the terminal",
	Long: `A Pomodoro timer that alternates working phases with short breaks and
takes a long break after every few working phases.

Settings are read from a YAML file in the user config directory and can be
overridden with flags.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (default: <config dir>/pomodoro/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

func setupLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(logLevel))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := storage.DefaultPath(appName)
	if err != nil {
		return "", fmt.Errorf("locate settings file: %w", err)
	}
	return path, nil
}

func loadSettings() (preferences.Settings, string, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return preferences.Settings{}, "", err
	}
	settings, err := storage.LoadSettings(path)
	if err != nil {
		return settings, path, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, path, nil
}
