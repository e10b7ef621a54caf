package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRepo(t *testing.T) {
	testCases := []struct {
		name string
		repo string
		want string
	}{
		{"shorthand", "user/repo", "https://github.com/user/repo"},
		{"default repo", DefaultRepo, "https://github.com/spurkit/spur-templates"},
		{"https url unchanged", "https://github.com/user/repo", "https://github.com/user/repo"},
		{"http url unchanged", "http://example.com/user/repo", "http://example.com/user/repo"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeRepo(tc.repo))
		})
	}
}

func TestParseRepo(t *testing.T) {
	testCases := []struct {
		name      string
		repoURL   string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{"shorthand", "user/repo", "user", "repo", false},
		{"full url", "https://github.com/user/repo", "user", "repo", false},
		{"trailing slash", "https://github.com/user/repo/", "user", "repo", false},
		{"single segment", "repo", "", "", true},
		{"blank owner segment", "https://github.com//repo", "", "", true},
		{"empty segments", "//", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			owner, name, err := ParseRepo(tc.repoURL)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOwner, owner)
			assert.Equal(t, tc.wantName, name)
		})
	}
}
