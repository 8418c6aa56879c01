//go:build unix

package terminal

import (
	"os"
	"syscall"
)

// raiseForKey raises the OS signal mapped to the key, if any.
// Returns true when a signal was raised and the key should not be
// delivered as input.
func raiseForKey(k Key) bool {
	var sig syscall.Signal
	switch k {
	case KeyCtrlC:
		sig = syscall.SIGINT
	case KeyCtrlZ:
		sig = syscall.SIGTSTP
	case KeyCtrlBackslash:
		sig = syscall.SIGQUIT
	default:
		return false
	}
	_ = syscall.Kill(os.Getpid(), sig)
	return true
}
