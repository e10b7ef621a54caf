package supervisor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleString(t *testing.T) {
	assert.Equal(t, "primary", RolePrimary.String())
	assert.Equal(t, "secondary", RoleSecondary.String())
	assert.Equal(t, "unknown", Role(99).String())
}

func TestProcessStateTerminal(t *testing.T) {
	testCases := []struct {
		state ProcessState
		want  bool
	}{
		{StateStarting, false},
		{StateRunning, false},
		{StateExitedOk, true},
		{StateExitedErr, true},
		{StateKilled, true},
	}

	for _, tc := range testCases {
		t.Run(tc.state.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.state.terminal())
		})
	}
}

func TestDisplayName(t *testing.T) {
	testCases := []struct {
		name string
		argv []string
		want string
	}{
		{"empty", nil, ""},
		{"bare command", []string{"air"}, "air"},
		{"path stripped", []string{"/usr/local/bin/spur", "watch"}, "spur"},
		{"npx resolves to tool", []string{"npx", "tailwindcss", "-w"}, "tailwindcss"},
		{"bare npx", []string{"npx"}, "npx"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, displayName(tc.argv))
		})
	}
}

func TestSpawnErrorMessage(t *testing.T) {
	cause := fmt.Errorf("executable file not found")
	err := &SpawnError{Role: RoleSecondary, Err: cause}

	assert.Contains(t, err.Error(), "secondary watcher")
	assert.Equal(t, cause, err.Unwrap())
}
