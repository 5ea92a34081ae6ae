package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pomodoro/internal/preferences"
	"pomodoro/internal/storage"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, path, err := loadSettings()
		if err != nil {
			return err
		}
		if err := applyFlagOverrides(cmd, &settings); err != nil {
			return err
		}
		encoded, err := storage.EncodeSettings(settings)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", path)
		_, err = out.Write(encoded)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("check settings file: %w", err)
		}
		if err := storage.SaveSettings(path, preferences.DefaultSettings()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing settings file")
	addTimerFlags(configShowCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
