package supervisor

import (
	"os"
	"os/signal"
	"syscall"
)

// startSignalBridge translates the host interrupt into exactly one shutdown
// reason. Because the supervised children run in their own process groups,
// a terminal interrupt reaches only this process; the bridge forwards it and
// the supervisor kills the children itself.
//
// The bridge is idempotent: repeated interrupts while teardown is already in
// progress are swallowed and never re-enter teardown. The returned stop
// function detaches the signal handler.
func (s *Supervisor) startSignalBridge(reasons chan<- shutdownReason) func() {
	sigc := make(chan os.Signal, 2)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})

	go func() {
		select {
		case <-sigc:
			reasons <- shutdownReason{kind: reasonInterrupt}
		case <-done:
			return
		}
		// Drain repeats until stopped so a second ctrl+c during teardown
		// neither kills the supervisor nor queues another shutdown.
		for {
			select {
			case <-sigc:
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigc)
		close(done)
	}
}
