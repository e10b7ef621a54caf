//go:build !windows

package supervisor

import (
	"os/exec"
	"syscall"
)

// sysProcAttr places each child in its own process group so that killing a
// watcher also kills anything it spawned (the watch loop's current run).
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// killProcessGroup delivers SIGKILL to the child's process group. Watchers
// are expected to die promptly on a kill signal; there is no negotiated
// shutdown. A failed group kill falls back to the process itself.
func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		_ = cmd.Process.Kill()
	}
}
