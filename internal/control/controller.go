package control

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"pomodoro/internal/core/pomodoro"
)

// Commander sends signals to a running timer.
type Commander interface {
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Abort(ctx context.Context) error
}

// StatusFunc prints the current timer state.
type StatusFunc func()

// Controller reads line commands and forwards them to a Commander.
type Controller struct {
	commander Commander
	status    StatusFunc
	out       io.Writer
	logger    *slog.Logger
}

// NewController creates a controller. status and logger may be nil.
func NewController(commander Commander, status StatusFunc, out io.Writer, logger *slog.Logger) *Controller {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{commander: commander, status: status, out: out, logger: logger}
}

// Run reads commands from in until EOF, abort, or a detached timer.
// Reaching EOF is not an error.
func (controller *Controller) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read commands: %w", err)
					}
				default:
				}
				return nil
			}
			stop, err := controller.Execute(ctx, line)
			if errors.Is(err, pomodoro.ErrDetached) {
				return nil
			}
			if err != nil {
				controller.logger.Warn("command failed", "command", line, "error", err)
			}
			if stop {
				return nil
			}
		}
	}
}

// Execute runs a single command line. stop reports whether the controller
// should exit.
func (controller *Controller) Execute(ctx context.Context, line string) (stop bool, err error) {
	command := strings.ToLower(strings.TrimSpace(line))
	switch command {
	case "":
		return false, nil
	case "p", "pause":
		return false, controller.commander.Pause(ctx)
	case "r", "resume":
		return false, controller.commander.Resume(ctx)
	case "a", "abort", "q", "quit":
		return true, controller.commander.Abort(ctx)
	case "s", "status":
		if controller.status != nil {
			controller.status()
		}
		return false, nil
	case "h", "help", "?":
		controller.printHelp()
		return false, nil
	default:
		fmt.Fprintf(controller.out, "unknown command %q\n", command)
		controller.printHelp()
		return false, nil
	}
}

func (controller *Controller) printHelp() {
	fmt.Fprintln(controller.out, "commands: p(ause), r(esume), s(tatus), a(bort), q(uit), h(elp)")
}
