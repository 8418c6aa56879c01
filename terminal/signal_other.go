//go:build !unix

package terminal

// raiseForKey is a no-op on platforms without POSIX signal delivery;
// ctrl-keys are always delivered as input.
func raiseForKey(Key) bool {
	return false
}
