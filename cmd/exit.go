package cmd

import "errors"

// exitCodeError carries the process exit code for a failed dev run so the
// crashing watcher's code propagates to spur's own exit status.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }

func (e *exitCodeError) Unwrap() error { return e.err }

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec *exitCodeError
	if errors.As(err, &ec) && ec.code != 0 {
		return ec.code
	}
	return 1
}
