package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterNilWriterDefaultsToStdout(t *testing.T) {
	p := NewPrinter(nil)
	assert.NotNil(t, p.w)
}

func TestPrinterLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Status("watching: %s", "app + css")
	p.Status("ready in %dms", 12)
	p.Hint("press ctrl+c to stop")
	p.Shutdown("shutting down...")
	p.Shutdown("stopped")

	out := buf.String()
	assert.Contains(t, out, "watching: app + css")
	assert.Contains(t, out, "ready in 12ms")
	assert.Contains(t, out, "press ctrl+c to stop")
	assert.Contains(t, out, "shutting down...")
	assert.Contains(t, out, "stopped")
}

func TestPrinterError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Error(errors.New("download template: HTTP 404"), "make sure the repository exists")

	out := buf.String()
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "HTTP 404")
	assert.Contains(t, out, "hint: make sure the repository exists")
}

func TestPrinterErrorWithoutSuggestion(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Error(errors.New("boom"), "")

	assert.NotContains(t, buf.String(), "hint:")
}

func TestJoinNames(t *testing.T) {
	testCases := []struct {
		name  string
		names []string
		want  string
	}{
		{"single", []string{"app"}, "app"},
		{"pair", []string{"app", "css"}, "app + css"},
		{"blank entries dropped", []string{"app", ""}, "app"},
		{"empty", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, JoinNames(tc.names...))
		})
	}
}
