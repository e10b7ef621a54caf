// Package supervisor implements spur's dev-mode process supervision core.
//
// The supervisor launches a primary watch process and, when the watch plan
// enables it, a secondary CSS watcher. The two are physically independent
// processes with linked lifetimes: an interrupt, a crash, or a clean exit of
// either one tears both down promptly and exactly once. Children communicate
// with the supervisor only through spawn, kill, and wait; their stdout and
// stderr pass through to the terminal unmodified.
package supervisor

import (
	"fmt"
	"path/filepath"
)

// Role identifies a supervised process.
type Role int

const (
	RolePrimary Role = iota
	RoleSecondary
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// ProcessState tracks a supervised process through its lifetime. The three
// exited states are terminal; no entry ever transitions out of them.
type ProcessState int

const (
	StateStarting ProcessState = iota
	StateRunning
	StateExitedOk
	StateExitedErr
	StateKilled
)

// String returns the string representation of the state
func (s ProcessState) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateExitedOk:
		return "exited"
	case StateExitedErr:
		return "failed"
	case StateKilled:
		return "killed"
	default:
		return "unknown"
	}
}

// terminal reports whether the state is one a process never leaves.
func (s ProcessState) terminal() bool {
	return s == StateExitedOk || s == StateExitedErr || s == StateKilled
}

// WatchPlan is the resolved decision of whether and how to run the secondary
// watcher. It is constructed once per dev invocation and immutable after
// that; when Enabled is false the supervisor never launches a second process.
type WatchPlan struct {
	Enabled bool
	Command []string
}

// Outcome is the result of a supervised run. When Failed is set, Role and
// Code identify the watcher whose non-zero exit triggered teardown.
type Outcome struct {
	Failed bool
	Role   Role
	Code   int
}

// SpawnError reports that a watcher executable could not be launched.
type SpawnError struct {
	Role Role
	Err  error
}

// Error implements the error interface
func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s watcher: %v", e.Role, e.Err)
}

// Unwrap returns the underlying launch error
func (e *SpawnError) Unwrap() error { return e.Err }

// reasonKind tags the cause that triggered teardown.
type reasonKind int

const (
	reasonInterrupt reasonKind = iota
	reasonPeerExited
	reasonPeerFailed
)

// shutdownReason is the single-writer-wins teardown trigger. The first
// reason delivered to the monitoring loop wins; anything sent after teardown
// has started is discarded unread.
type shutdownReason struct {
	kind reasonKind
	role Role
	code int
}

// displayName derives the short name shown on the "watching:" line from an
// argument vector. Commands run through npx are named after the tool npx
// resolves, not npx itself.
func displayName(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	base := filepath.Base(argv[0])
	if base == "npx" && len(argv) > 1 {
		return argv[1]
	}
	return base
}
