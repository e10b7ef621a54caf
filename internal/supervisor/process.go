package supervisor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/spurkit/spur/internal/logging"
)

// supervised is a running child process tracked by the supervisor. The
// process handle is owned exclusively by this entry: nothing else signals,
// waits on, or mutates it. The entry is released (killed and waited on)
// before it is dropped, never leaked.
type supervised struct {
	role Role
	name string
	cmd  *exec.Cmd

	mu    sync.Mutex
	state ProcessState

	// done is closed by the wait goroutine once cmd.Wait returns.
	done     chan struct{}
	exitCode int

	killOnce sync.Once
}

// spawn launches argv as a supervised child. The child gets its own process
// group so a kill reaches any grandchildren, and its stdout/stderr are
// inherited unmodified. Only the primary watcher inherits stdin.
func spawn(role Role, argv []string, withStdin bool) (*supervised, error) {
	if len(argv) == 0 {
		return nil, &SpawnError{Role: role, Err: errors.New("empty command")}
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if withStdin {
		cmd.Stdin = os.Stdin
	}
	cmd.SysProcAttr = sysProcAttr()

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Role: role, Err: err}
	}

	p := &supervised{
		role:  role,
		name:  displayName(argv),
		cmd:   cmd,
		state: StateRunning,
		done:  make(chan struct{}),
	}

	go p.wait()

	return p, nil
}

// wait blocks until the child exits and records the terminal state. A child
// the supervisor already marked killed keeps that state; spontaneous exits
// record ExitedOk or ExitedErr with the exit code.
func (p *supervised) wait() {
	err := p.cmd.Wait()

	p.mu.Lock()
	if p.state != StateKilled {
		code := exitCodeOf(err)
		p.exitCode = code
		if code == 0 {
			p.state = StateExitedOk
		} else {
			p.state = StateExitedErr
		}
	}
	p.mu.Unlock()

	close(p.done)
}

// currentState returns the state under lock.
func (p *supervised) currentState() ProcessState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// monitor relays a spontaneous child exit to the teardown channel. Exits
// caused by the supervisor's own kill are expected and not relayed. The send
// never blocks: the channel is buffered for every possible event source and
// only the first reason is ever read.
func (p *supervised) monitor(reasons chan<- shutdownReason) {
	<-p.done

	p.mu.Lock()
	state := p.state
	code := p.exitCode
	p.mu.Unlock()

	switch state {
	case StateExitedOk:
		reasons <- shutdownReason{kind: reasonPeerExited, role: p.role}
	case StateExitedErr:
		reasons <- shutdownReason{kind: reasonPeerFailed, role: p.role, code: code}
	}
}

// release kills the child if it is still running and waits for it to
// actually terminate, bounded by killWait. Killing a process already in a
// terminal state is a no-op. release is safe to call multiple times and runs
// on every exit path of Run via defer, so an unwind through unrelated code
// still reaps the child.
func (p *supervised) release(killWait time.Duration, log logging.Logger) {
	p.killOnce.Do(func() {
		p.mu.Lock()
		if p.state.terminal() {
			p.mu.Unlock()
			return
		}
		p.state = StateKilled
		p.mu.Unlock()

		killProcessGroup(p.cmd)
	})

	select {
	case <-p.done:
	case <-time.After(killWait):
		// The process table will eventually reclaim it; do not block the
		// teardown on an unresponsive child.
		log.Warn(context.Background(), nil, "process did not exit after kill",
			"role", p.role.String(), "name", p.name, "wait", killWait.String())
	}
}

// exitCodeOf maps a cmd.Wait error to an exit code. Signal deaths have no
// code; they are reported as 1 so the failure still propagates.
func exitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		return 1
	}
	return 1
}
