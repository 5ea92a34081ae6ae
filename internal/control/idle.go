package control

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/platform"
)

const defaultIdleCheckInterval = 5 * time.Second

// Pauser pauses and resumes a running timer.
type Pauser interface {
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
}

// ActivityReporter reports whether the timer is running.
type ActivityReporter interface {
	IsActive() bool
}

// IdleGuard pauses the timer once the user has been idle for the threshold
// and resumes it when input returns. It only resumes pauses it caused: a
// timer already paused by the user or by step mode is left alone.
type IdleGuard struct {
	provider      platform.IdleProvider
	pauser        Pauser
	activity      ActivityReporter
	threshold     time.Duration
	checkInterval time.Duration
	logger        *slog.Logger

	pausedByIdle bool
}

// NewIdleGuard creates an idle guard. A non-positive interval uses 5s.
func NewIdleGuard(provider platform.IdleProvider, pauser Pauser, activity ActivityReporter, threshold, interval time.Duration, logger *slog.Logger) *IdleGuard {
	if interval <= 0 {
		interval = defaultIdleCheckInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IdleGuard{
		provider:      provider,
		pauser:        pauser,
		activity:      activity,
		threshold:     threshold,
		checkInterval: interval,
		logger:        logger,
	}
}

// Run polls the idle provider until ctx is done. Unsupported platforms stop
// the guard without an error.
func (guard *IdleGuard) Run(ctx context.Context) error {
	ticker := time.NewTicker(guard.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := guard.check(ctx)
			if errors.Is(err, platform.ErrIdleUnsupported) {
				guard.logger.Info("idle detection unavailable, auto-pause disabled")
				return nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, pomodoro.ErrDetached) {
				return nil
			}
			if err != nil {
				guard.logger.Warn("idle check failed", "error", err)
			}
		}
	}
}

func (guard *IdleGuard) check(ctx context.Context) error {
	idle, err := guard.provider.IdleDuration()
	if err != nil {
		return err
	}
	if idle < guard.threshold {
		if !guard.pausedByIdle {
			return nil
		}
		if err := guard.pauser.Resume(ctx); err != nil {
			return err
		}
		guard.pausedByIdle = false
		guard.logger.Info("resumed after inactivity")
		return nil
	}
	if guard.pausedByIdle || !guard.activity.IsActive() {
		return nil
	}
	if err := guard.pauser.Pause(ctx); err != nil {
		return err
	}
	guard.pausedByIdle = true
	guard.logger.Info("paused after inactivity", "idle", idle.Round(time.Second))
	return nil
}
