package pomodoro

import (
	"context"
	"errors"
)

// ErrDetached indicates the runner no longer listens for signals.
var ErrDetached = errors.New("pomodoro controller detached")

// Client sends control signals to a started Pomodoro.
type Client struct {
	id       string
	signals  chan<- Signal
	detached chan struct{}
	done     chan struct{}
	err      error
}

// ID returns the session identifier of the runner.
func (client *Client) ID() string {
	return client.id
}

// Pause asks the runner to stop advancing.
func (client *Client) Pause(ctx context.Context) error {
	return client.send(ctx, SignalPause)
}

// Resume asks the runner to continue advancing.
func (client *Client) Resume(ctx context.Context) error {
	return client.send(ctx, SignalResume)
}

// Abort stops the runner.
func (client *Client) Abort(ctx context.Context) error {
	return client.send(ctx, SignalAbort)
}

// Done is closed once both runner goroutines have exited.
func (client *Client) Done() <-chan struct{} {
	return client.done
}

// Wait blocks until the runner stops and returns the first task failure.
func (client *Client) Wait() error {
	<-client.done
	return client.err
}

func (client *Client) send(ctx context.Context, signal Signal) error {
	select {
	case <-client.detached:
		return ErrDetached
	default:
	}

	select {
	case client.signals <- signal:
		// select picks randomly when both cases are ready; a signal queued
		// after the listener left is never read.
		select {
		case <-client.detached:
			return ErrDetached
		default:
			return nil
		}
	case <-client.detached:
		return ErrDetached
	case <-ctx.Done():
		return ctx.Err()
	}
}
