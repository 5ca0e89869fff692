//go:build windows

package invoke

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachAttr detaches the child from our console and process group.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
}
