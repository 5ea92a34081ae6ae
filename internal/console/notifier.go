package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"pomodoro/internal/core/pomodoro"
)

var phaseMessages = map[pomodoro.Phase]string{
	pomodoro.PhaseWorking:    "Back to work.",
	pomodoro.PhaseShortBreak: "Time for a short break.",
	pomodoro.PhaseLongBreak:  "Time for a long break. Rest your eyes!",
}

// Notifier prints timer events to a terminal.
// Printing methods are safe for concurrent use.
type Notifier struct {
	mu           sync.Mutex
	out          io.Writer
	showProgress bool
	progressLine bool
}

// NewNotifier creates a notifier writing to out, or stdout when out is nil.
func NewNotifier(out io.Writer, showProgress bool) *Notifier {
	if out == nil {
		out = os.Stdout
	}
	return &Notifier{out: out, showProgress: showProgress}
}

// Consume prints events until the channel closes or ctx is done.
func (notifier *Notifier) Consume(ctx context.Context, events <-chan pomodoro.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				notifier.mu.Lock()
				notifier.clearProgress()
				notifier.mu.Unlock()
				return
			}
			notifier.Notify(event)
		}
	}
}

// Notify prints a single event.
func (notifier *Notifier) Notify(event pomodoro.Event) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	switch event.Type {
	case pomodoro.EventProgress:
		if notifier.showProgress {
			notifier.printProgress(event)
		}
	case pomodoro.EventPhaseChange:
		notifier.clearProgress()
		pterm.Success.WithWriter(notifier.out).Printfln("%s finished (%s). %s",
			PhaseTitle(event.Previous), countsLine(event.Counter), phaseMessages[event.Phase])
	case pomodoro.EventPaused:
		notifier.clearProgress()
		if event.Reason == pomodoro.ReasonStepMode {
			pterm.Warning.WithWriter(notifier.out).Printfln("Paused before %s. Type r to continue.", PhaseTitle(event.Phase))
			return
		}
		pterm.Warning.WithWriter(notifier.out).Printfln("Paused with %s left in %s.", FormatRemaining(event.Remaining), PhaseTitle(event.Phase))
	case pomodoro.EventResumed:
		notifier.clearProgress()
		pterm.Info.WithWriter(notifier.out).Printfln("%s: %s left.", PhaseTitle(event.Phase), FormatRemaining(event.Remaining))
	case pomodoro.EventConsumed:
		notifier.clearProgress()
		pterm.Success.WithWriter(notifier.out).Printfln("All %d working sessions done.", event.Counter.Working())
	}
}

// PrintSummary prints the final counts in a box.
func (notifier *Notifier) PrintSummary(snapshot pomodoro.Snapshot) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	notifier.clearProgress()
	content := fmt.Sprintf("Working: %d\nShort breaks: %d\nLong breaks: %d",
		snapshot.Counter.Working(), snapshot.Counter.ShortBreak(), snapshot.Counter.LongBreak())
	pterm.DefaultBox.WithTitle("Session").WithTitleTopCenter().WithWriter(notifier.out).Println(content)
}

// PrintStatus prints the current phase and counts.
func (notifier *Notifier) PrintStatus(snapshot pomodoro.Snapshot) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	notifier.clearProgress()
	state := "running"
	switch {
	case snapshot.Consumed:
		state = "done"
	case snapshot.Paused:
		state = "paused"
	}
	pterm.Info.WithWriter(notifier.out).Printfln("%s, %s left (%s). %s",
		PhaseTitle(snapshot.Phase), FormatRemaining(snapshot.Remaining), state, countsLine(snapshot.Counter))
}

func (notifier *Notifier) printProgress(event pomodoro.Event) {
	fmt.Fprintf(notifier.out, "\r%-12s %s [%5.1f%%]", PhaseTitle(event.Phase), FormatRemaining(event.Remaining), event.Progress*100)
	notifier.progressLine = true
}

func (notifier *Notifier) clearProgress() {
	if !notifier.progressLine {
		return
	}
	fmt.Fprintf(notifier.out, "\r%s\r", strings.Repeat(" ", 40))
	notifier.progressLine = false
}

// PhaseTitle returns a human-readable phase name.
func PhaseTitle(phase pomodoro.Phase) string {
	switch phase {
	case pomodoro.PhaseWorking:
		return "Working"
	case pomodoro.PhaseShortBreak:
		return "Short break"
	case pomodoro.PhaseLongBreak:
		return "Long break"
	default:
		return phase.String()
	}
}

// FormatRemaining renders a duration as MM:SS.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func countsLine(counter pomodoro.Counter) string {
	return fmt.Sprintf("work %d, short %d, long %d", counter.Working(), counter.ShortBreak(), counter.LongBreak())
}
