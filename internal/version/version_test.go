package version

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	assert.NotEmpty(t, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestGetVersionStamped(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3"
	assert.Equal(t, "1.2.3", GetVersion())
	assert.Equal(t, "1.2.3", GetShortVersion())
}

func TestGetGitCommitStamped(t *testing.T) {
	orig := GitCommit
	defer func() { GitCommit = orig }()

	GitCommit = "abc1234def"
	assert.Equal(t, "abc1234def", GetGitCommit())
}

func TestParseBuildTime(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"unknown", "unknown", time.Time{}},
		{"empty", "", time.Time{}},
		{"garbage", "yesterday", time.Time{}},
		{"rfc3339", "2026-08-25T12:00:00Z", time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseBuildTime(tc.value))
		})
	}
}
