//go:build !windows

package util

// IsRunFromGUI reports whether the process was started by double clicking
// it. Outside Windows the answer is always no.
func IsRunFromGUI() bool {
	return false
}
