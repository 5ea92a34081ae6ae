package platform

import (
	"errors"
	"fmt"
	"syscall"
	"time"
	"unsafe"
)

var (
	procGetLastInputInfo = syscall.NewLazyDLL("user32.dll").NewProc("GetLastInputInfo")
	procGetTickCount64   = syscall.NewLazyDLL("kernel32.dll").NewProc("GetTickCount64")
)

// lastInputInfo mirrors the Win32 LASTINPUTINFO struct.
type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

type lastInputProvider struct{}

func newIdleProvider() IdleProvider {
	if procGetLastInputInfo.Find() != nil || procGetTickCount64.Find() != nil {
		return unsupportedIdleProvider{}
	}
	return lastInputProvider{}
}

func (lastInputProvider) IdleDuration() (time.Duration, error) {
	info := lastInputInfo{cbSize: uint32(unsafe.Sizeof(lastInputInfo{}))}
	result, _, err := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if result == 0 {
		if err == nil {
			err = errors.New("unknown error")
		}
		return 0, fmt.Errorf("get last input info: %w", err)
	}

	now, _, _ := procGetTickCount64.Call()
	// dwTime wraps after ~49 days; compare in the same 32-bit space.
	idleMillis := uint32(now) - info.dwTime
	return time.Duration(idleMillis) * time.Millisecond, nil
}
