//go:build unix

package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Detach re-executes the current binary with the same arguments in a new
// session, detached from the controlling terminal, with stdin, stdout and
// stderr redirected to /dev/null. It returns the child PID; the caller is
// expected to exit right after.
func Detach() (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("failed to resolve executable path: %w", err)
	}

	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}
	defer devnull.Close()

	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Env = append(os.Environ(), envMarker+"=1")
	cmd.Stdin = devnull
	cmd.Stdout = devnull
	cmd.Stderr = devnull
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start detached process: %w", err)
	}

	pid := cmd.Process.Pid

	// The child outlives the parent; release it so the parent can exit
	// without leaving a zombie reference behind.
	if err := cmd.Process.Release(); err != nil {
		return pid, fmt.Errorf("failed to release detached process: %w", err)
	}

	return pid, nil
}
