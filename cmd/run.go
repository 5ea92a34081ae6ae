package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"pomodoro/internal/console"
	"pomodoro/internal/control"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/metrics"
	"pomodoro/internal/platform"
	"pomodoro/internal/preferences"
)

const eventBuffer = 64

var (
	workDuration       time.Duration
	shortBreakDuration time.Duration
	longBreakDuration  time.Duration
	tickInterval       time.Duration
	longBreakInterval  int
	continuous         bool
	until              int
	idlePause          bool
	idlePauseAfter     time.Duration
	metricsAddress     string
	allowMultiple      bool
	showProgress       bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the timer",
	Long: `Start the timer in the foreground.

While it runs, type a command and press enter:
  p, pause    pause the current phase
  r, resume   resume, or start the next phase in step mode
  s, status   print the current phase and counts
  a, abort    stop the timer (q and quit work too)

Examples:
  # Classic 25/5/15 schedule
  pomodoro run

  # Four working phases, waiting for a resume between phases
  pomodoro run --until 4 --continuous=false

  # Expose Prometheus metrics
  pomodoro run --metrics-addr 127.0.0.1:9464`,
	Args: cobra.NoArgs,
	RunE: runTimer,
}

func init() {
	addTimerFlags(runCmd)
	runCmd.Flags().BoolVar(&allowMultiple, "allow-multiple", false, "Skip the single instance check")
	runCmd.Flags().BoolVar(&showProgress, "progress", true, "Show a live countdown line")
}

func addTimerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.DurationVar(&workDuration, "work", 0, "Working phase length")
	flags.DurationVar(&shortBreakDuration, "short-break", 0, "Short break length")
	flags.DurationVar(&longBreakDuration, "long-break", 0, "Long break length")
	flags.DurationVar(&tickInterval, "tick", 0, "Tick interval of every phase")
	flags.IntVar(&longBreakInterval, "interval", 0, "Working phases per long break")
	flags.BoolVar(&continuous, "continuous", true, "Start the next phase without waiting for resume")
	flags.IntVar(&until, "until", 0, "Stop after this many working phases (0 = never)")
	flags.BoolVar(&idlePause, "idle-pause", false, "Pause automatically when the user is idle")
	flags.DurationVar(&idlePauseAfter, "idle-after", 0, "Idle time before an automatic pause")
	flags.StringVar(&metricsAddress, "metrics-addr", "", "Serve Prometheus metrics on this address")
}

// applyFlagOverrides copies explicitly set flags over the loaded settings.
func applyFlagOverrides(cmd *cobra.Command, settings *preferences.Settings) error {
	flags := cmd.Flags()
	if flags.Changed("work") {
		settings.WorkDuration = workDuration
	}
	if flags.Changed("short-break") {
		settings.ShortBreakDuration = shortBreakDuration
	}
	if flags.Changed("long-break") {
		settings.LongBreakDuration = longBreakDuration
	}
	if flags.Changed("tick") {
		settings.TickInterval = tickInterval
	}
	if flags.Changed("interval") {
		settings.LongBreakInterval = longBreakInterval
	}
	if flags.Changed("continuous") {
		settings.Continuous = continuous
	}
	if flags.Changed("until") {
		settings.Until = until
	}
	if flags.Changed("idle-pause") {
		settings.IdlePauseEnabled = idlePause
	}
	if flags.Changed("idle-after") {
		settings.IdlePauseAfter = idlePauseAfter
	}
	if flags.Changed("metrics-addr") {
		settings.MetricsAddress = metricsAddress
	}
	return settings.PomodoroConfig().Validate()
}

func runTimer(cmd *cobra.Command, args []string) error {
	logger, err := setupLogger()
	if err != nil {
		return err
	}

	settings, path, err := loadSettings()
	if err != nil {
		return err
	}
	if err := applyFlagOverrides(cmd, &settings); err != nil {
		return err
	}
	logger.Debug("settings loaded", slog.String("path", path))

	if !allowMultiple {
		guard, err := platform.AcquireSingleInstance(appName)
		if err != nil {
			return fmt.Errorf("single instance: %w", err)
		}
		defer func() {
			_ = guard.Release()
		}()
	}

	machine, err := pomodoro.New(settings.PomodoroConfig(), pomodoro.Config{Logger: logger})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := console.NewNotifier(cmd.OutOrStdout(), showProgress)
	var consumers sync.WaitGroup
	notifierEvents := machine.Subscribe(eventBuffer)
	consumers.Add(1)
	go func() {
		defer consumers.Done()
		notifier.Consume(ctx, notifierEvents)
	}()

	if settings.MetricsAddress != "" {
		server := startMetricsServer(ctx, machine, settings.MetricsAddress, &consumers, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	client := pomodoro.Start(ctx, machine)

	sessionCtx, cancelSession := context.WithCancel(ctx)
	defer cancelSession()

	controller := control.NewController(client, func() {
		notifier.PrintStatus(machine.Snapshot())
	}, cmd.OutOrStdout(), logger)
	go func() {
		if err := controller.Run(sessionCtx, cmd.InOrStdin()); err != nil {
			logger.Warn("command input stopped", "error", err)
		}
	}()

	if settings.IdlePauseEnabled {
		guard := control.NewIdleGuard(platform.NewIdleProvider(), client, machine, settings.IdlePauseAfter, 0, logger)
		go func() {
			_ = guard.Run(sessionCtx)
		}()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Type p to pause, r to resume, s for status, a to abort.\n")
	runErr := client.Wait()
	cancelSession()
	consumers.Wait()

	notifier.PrintSummary(machine.Snapshot())
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

func startMetricsServer(ctx context.Context, machine *pomodoro.Pomodoro, address string, consumers *sync.WaitGroup, logger *slog.Logger) *http.Server {
	pm := metrics.NewPrometheusMetrics()
	registry := prometheus.NewRegistry()
	registry.MustRegister(pm)

	events := machine.Subscribe(eventBuffer)
	consumers.Add(1)
	go func() {
		defer consumers.Done()
		pm.Consume(ctx, events)
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(registry))
	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("serving metrics", slog.String("address", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.String("error", err.Error()))
		}
	}()
	return server
}
