//go:build windows

package daemon

import "errors"

// Detach is not supported on Windows; run the server in the foreground or
// under a service manager instead.
func Detach() (int, error) {
	return 0, errors.New("detached mode is not supported on windows")
}
