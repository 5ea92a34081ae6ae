package platform

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestAcquireSingleInstance_Exclusive(t *testing.T) {
	name := fmt.Sprintf("pomodoro-test-%d", time.Now().UnixNano())

	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("lock port unavailable in this environment: %v", err)
	}
	defer guard.Release()

	if guard.Address() == "" {
		t.Error("Address() is empty")
	}

	if _, err := AcquireSingleInstance(name); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second AcquireSingleInstance() error = %v, want ErrAlreadyRunning", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("Release() error: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Errorf("second Release() error: %v", err)
	}

	again, err := AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("AcquireSingleInstance() after Release() error: %v", err)
	}
	again.Release()
}

func TestInstanceGuard_NilSafe(t *testing.T) {
	var guard *InstanceGuard
	if err := guard.Release(); err != nil {
		t.Errorf("Release() on nil guard = %v", err)
	}
	if guard.Address() != "" {
		t.Errorf("Address() on nil guard = %q", guard.Address())
	}
}

func TestLockPort_StableAndInRange(t *testing.T) {
	for _, name := range []string{"pomodoro", "Pomodoro", "work", ""} {
		port := lockPort(name)
		if port < minLockPort || port > maxLockPort {
			t.Errorf("lockPort(%q) = %d, outside [%d, %d]", name, port, minLockPort, maxLockPort)
		}
		if lockPort(name) != port {
			t.Errorf("lockPort(%q) not stable", name)
		}
	}
}
