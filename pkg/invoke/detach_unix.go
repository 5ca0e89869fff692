//go:build !windows

package invoke

import "syscall"

// detachAttr places the child in its own session so it survives the caller.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
