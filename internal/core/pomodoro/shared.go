package pomodoro

import "sync"

// pauseFlag is the only state written by both the advancing loop and the
// signal loop. Every read and write takes the lock.
type pauseFlag struct {
	mu     sync.Mutex
	paused bool
}

func newPauseFlag() *pauseFlag {
	return &pauseFlag{paused: true}
}

// pause reports whether the flag changed.
func (flag *pauseFlag) pause() bool {
	flag.mu.Lock()
	defer flag.mu.Unlock()
	if flag.paused {
		return false
	}
	flag.paused = true
	return true
}

// resume reports whether the flag changed.
func (flag *pauseFlag) resume() bool {
	flag.mu.Lock()
	defer flag.mu.Unlock()
	if !flag.paused {
		return false
	}
	flag.paused = false
	return true
}

func (flag *pauseFlag) isPaused() bool {
	flag.mu.Lock()
	defer flag.mu.Unlock()
	return flag.paused
}
