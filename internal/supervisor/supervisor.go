package supervisor

import (
	"context"
	"errors"
	"time"

	"github.com/spurkit/spur/internal/logging"
	"github.com/spurkit/spur/internal/ui"
)

// DefaultKillWait bounds how long teardown waits for a killed process to
// leave the process table before logging a warning and moving on.
const DefaultKillWait = 5 * time.Second

// Supervisor runs one dev invocation. All state lives in the value: there is
// no process-wide singleton and Run is reentrant across invocations.
type Supervisor struct {
	printer  *ui.Printer
	logger   logging.Logger
	killWait time.Duration

	// notifyInterrupt is swapped in tests to inject interrupts without
	// raising real signals. Defaults to the OS signal bridge.
	notifyInterrupt func(chan<- shutdownReason) (stop func())
}

// New creates a supervisor rendering status through printer and logging
// diagnostics through logger. Either may be nil for defaults.
func New(printer *ui.Printer, logger logging.Logger) *Supervisor {
	if printer == nil {
		printer = ui.NewPrinter(nil)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &Supervisor{
		printer:  printer,
		logger:   logger.WithComponent("supervisor"),
		killWait: DefaultKillWait,
	}
	s.notifyInterrupt = s.startSignalBridge
	return s
}

// Run launches the primary watch command and, when the plan enables it, the
// secondary watcher, then blocks until the first of: interrupt, primary
// exit, secondary exit. Whichever comes first, every still-running watcher
// is killed and waited on before Run returns; exactly one teardown sequence
// ever executes and no orphan survives the call.
//
// The returned error is non-nil only for spawn failures and an empty primary
// command. A watcher crash is a normal outcome: Run returns Outcome.Failed
// with the crashing role and exit code.
func (s *Supervisor) Run(ctx context.Context, primary []string, plan WatchPlan) (Outcome, error) {
	if len(primary) == 0 {
		return Outcome{}, errors.New("primary command must not be empty")
	}

	started := time.Now()

	// Buffered for every possible writer (two children + interrupt) so no
	// event source ever blocks; only the first reason is read.
	reasons := make(chan shutdownReason, 3)

	prim, err := spawn(RolePrimary, primary, true)
	if err != nil {
		return Outcome{}, err
	}
	// Scope-bound cleanup: this runs on every exit path of Run, including
	// panics unwinding from below, so the child can never be orphaned.
	defer prim.release(s.killWait, s.logger)

	var sec *supervised
	if plan.Enabled {
		sec, err = spawn(RoleSecondary, plan.Command, false)
		if err != nil {
			// The primary is already running; take it down and confirm it is
			// gone before surfacing the spawn error.
			prim.release(s.killWait, s.logger)
			return Outcome{}, err
		}
		defer sec.release(s.killWait, s.logger)
	}

	go prim.monitor(reasons)
	if sec != nil {
		go sec.monitor(reasons)
	}

	stopBridge := s.notifyInterrupt(reasons)
	defer stopBridge()

	if sec != nil {
		s.printer.Status("watching: %s", ui.JoinNames(prim.name, sec.name))
	} else {
		s.printer.Status("watching: %s", prim.name)
	}
	s.printer.Status("ready in %dms", time.Since(started).Milliseconds())
	s.printer.Hint("press ctrl+c to stop")
	s.printer.Blank()

	s.logger.Debug(ctx, "supervising", "primary", prim.name, "secondary", sec != nil)

	// The monitoring loop: suspend until the first terminal event. Nothing
	// here polls, and no event after the first is ever inspected.
	var reason shutdownReason
	select {
	case reason = <-reasons:
	case <-ctx.Done():
		reason = shutdownReason{kind: reasonInterrupt}
	}

	if reason.kind == reasonPeerFailed {
		s.printer.Warn("%s watcher exited with code %d", s.nameFor(reason.role, prim, sec), reason.code)
	}

	s.printer.Blank()
	s.printer.Shutdown("shutting down...")

	prim.release(s.killWait, s.logger)
	if sec != nil {
		sec.release(s.killWait, s.logger)
	}

	s.printer.Shutdown("stopped")

	if reason.kind == reasonPeerFailed {
		return Outcome{Failed: true, Role: reason.role, Code: reason.code}, nil
	}
	return Outcome{}, nil
}

// nameFor maps a role back to the display name of its process entry.
func (s *Supervisor) nameFor(role Role, prim, sec *supervised) string {
	if role == RoleSecondary && sec != nil {
		return sec.name
	}
	return prim.name
}
