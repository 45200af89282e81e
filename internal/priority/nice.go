package priority

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Controller reads and writes per-process scheduling niceness.
//
// It is an interface so the focus handler and the store can be exercised in
// tests without touching real processes.
type Controller interface {
	// Get returns the current niceness of pid.
	Get(pid int) (int, error)
	// Set applies a niceness to pid.
	Set(pid int, nice int) error
}

// UnixController implements Controller with getpriority(2)/setpriority(2)
// at process granularity.
type UnixController struct{}

var _ Controller = UnixController{}

// Get returns the niceness of pid.
//
// The raw getpriority syscall reports 20-nice so the kernel never returns a
// negative value; x/sys exposes the kernel convention, so convert back here.
func (UnixController) Get(pid int) (int, error) {
	prio, err := unix.Getpriority(unix.PRIO_PROCESS, pid)
	if err != nil {
		return 0, fmt.Errorf("getpriority pid %d: %w", pid, err)
	}
	return 20 - prio, nil
}

// Set applies nice to pid.
func (UnixController) Set(pid int, nice int) error {
	if err := unix.Setpriority(unix.PRIO_PROCESS, pid, nice); err != nil {
		return fmt.Errorf("setpriority pid %d: %w", pid, err)
	}
	return nil
}
