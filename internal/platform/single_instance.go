package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another timer already holds the lock.
var ErrAlreadyRunning = errors.New("timer already running")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceGuard holds the single-instance lock for one timer.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// AcquireSingleInstance binds a localhost port derived from name. A second
// caller with the same name gets ErrAlreadyRunning until Release.
func AcquireSingleInstance(name string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(name))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrAlreadyRunning, address, err)
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Release frees the lock. It is safe to call on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func lockPort(name string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(name))
	rangeSize := maxLockPort - minLockPort + 1
	return minLockPort + int(hash.Sum32()%uint32(rangeSize))
}
