//go:build !windows

package supervisor

import (
	"bytes"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalBridgeForwardsInterrupt(t *testing.T) {
	var out bytes.Buffer
	s := newTestSupervisor(&out)

	reasons := make(chan shutdownReason, 3)
	stop := s.startSignalBridge(reasons)
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case r := <-reasons:
		assert.Equal(t, reasonInterrupt, r.kind)
	case <-time.After(2 * time.Second):
		t.Fatal("interrupt was not forwarded")
	}
}

func TestSignalBridgeSwallowsRepeats(t *testing.T) {
	var out bytes.Buffer
	s := newTestSupervisor(&out)

	reasons := make(chan shutdownReason, 3)
	stop := s.startSignalBridge(reasons)
	defer stop()

	for i := 0; i < 3; i++ {
		require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))
		time.Sleep(20 * time.Millisecond)
	}

	// First delivery only; repeats are drained without queueing more work.
	<-reasons
	select {
	case r := <-reasons:
		t.Fatalf("repeated interrupt produced a second reason: %v", r.kind)
	case <-time.After(200 * time.Millisecond):
	}
}
