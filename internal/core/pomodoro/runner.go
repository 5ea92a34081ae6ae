package pomodoro

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrTaskPanicked indicates a runner goroutine panicked. The machine state
// can no longer be trusted and the runner stops.
var ErrTaskPanicked = errors.New("pomodoro task panicked")

// Signal is a control message for a started Pomodoro.
type Signal int

const (
	SignalResume Signal = iota
	SignalPause
	SignalAbort
)

const signalBuffer = 2

func (signal Signal) String() string {
	switch signal {
	case SignalResume:
		return "resume"
	case SignalPause:
		return "pause"
	case SignalAbort:
		return "abort"
	default:
		return fmt.Sprintf("signal(%d)", int(signal))
	}
}

// Run resumes the machine and advances it until it is paused, consumed or
// ctx is cancelled. The only suspension point is the per-tick sleep.
func (machine *Pomodoro) Run(ctx context.Context) error {
	machine.Resume()
	return machine.advance(ctx)
}

func (machine *Pomodoro) advance(ctx context.Context) error {
	for !machine.IsConsumed() && machine.IsActive() {
		if !machine.currentClockDone() {
			if err := machine.sleeper.Sleep(ctx, machine.currentTickInterval()); err != nil {
				return err
			}
			machine.proceed()
			continue
		}
		machine.nextCycle()
		if !machine.continuous {
			machine.pause(ReasonStepMode)
		}
	}
	if machine.IsConsumed() {
		machine.emit(EventConsumed, "")
	}
	return nil
}

type runner struct {
	machine *Pomodoro
	signals <-chan Signal
	wake    chan struct{}
	cancel  context.CancelFunc
	logger  *slog.Logger
}

// Start hands machine to a runner and returns a Client controlling it.
// Two goroutines run until the cap is reached, Abort is sent, ctx is
// cancelled or one of them panics.
func Start(ctx context.Context, machine *Pomodoro) *Client {
	runCtx, cancel := context.WithCancel(ctx)
	group, groupCtx := errgroup.WithContext(runCtx)

	signals := make(chan Signal, signalBuffer)
	client := &Client{
		id:       uuid.NewString(),
		signals:  signals,
		detached: make(chan struct{}),
		done:     make(chan struct{}),
	}

	r := &runner{
		machine: machine,
		signals: signals,
		wake:    make(chan struct{}, 1),
		cancel:  cancel,
		logger:  machine.logger.With("session", client.id),
	}

	group.Go(r.guard(groupCtx, "advance", r.advance))
	group.Go(r.guard(groupCtx, "signals", func(ctx context.Context) error {
		defer close(client.detached)
		return r.listen(ctx)
	}))

	r.logger.Info("pomodoro started", "continuous", machine.continuous)
	go func() {
		client.err = group.Wait()
		cancel()
		machine.events.close()
		r.logger.Info("pomodoro stopped", "error", client.err)
		close(client.done)
	}()

	return client
}

func (r *runner) advance(ctx context.Context) error {
	err := r.machine.Run(ctx)
	for {
		if err != nil {
			return ignoreCanceled(err)
		}
		if r.machine.IsConsumed() {
			r.logger.Info("working cycle cap reached")
			r.cancel()
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-r.wake:
		}
		err = r.machine.advance(ctx)
	}
}

func (r *runner) listen(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case signal := <-r.signals:
			r.logger.Debug("signal received", "signal", signal.String())
			switch signal {
			case SignalPause:
				r.machine.Pause()
			case SignalResume:
				r.machine.Resume()
				select {
				case r.wake <- struct{}{}:
				default:
				}
			case SignalAbort:
				r.cancel()
				return nil
			}
		}
	}
}

// guard turns a panic in fn into an error so the group cancels the sibling task.
func (r *runner) guard(ctx context.Context, name string, fn func(context.Context) error) func() error {
	return func() (err error) {
		defer func() {
			if recovered := recover(); recovered != nil {
				r.logger.Error("recovered from panic", "task", name, "panic", recovered, "stack", string(debug.Stack()))
				err = fmt.Errorf("%w: %s: %v", ErrTaskPanicked, name, recovered)
			}
		}()
		return fn(ctx)
	}
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
