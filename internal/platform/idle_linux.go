package platform

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// xprintidleProvider asks the X server for the time since the last input.
type xprintidleProvider struct {
	path string
}

func newIdleProvider() IdleProvider {
	path, err := exec.LookPath("xprintidle")
	if err != nil {
		return unsupportedIdleProvider{}
	}
	return &xprintidleProvider{path: path}
}

func (provider *xprintidleProvider) IdleDuration() (time.Duration, error) {
	output, err := exec.Command(provider.path).Output()
	if err != nil {
		return 0, fmt.Errorf("xprintidle: %w", err)
	}
	return parseIdleMillis(string(output))
}

func parseIdleMillis(output string) (time.Duration, error) {
	idleMillis, err := strconv.ParseInt(strings.TrimSpace(output), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle milliseconds: %w", err)
	}
	if idleMillis < 0 {
		idleMillis = 0
	}
	return time.Duration(idleMillis) * time.Millisecond, nil
}
