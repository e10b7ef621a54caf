// Package template implements the template provider for create-app: it
// downloads a GitHub repository tarball, extracts the named template
// subdirectory into the new project folder, and rewrites placeholder tokens
// with the project name.
package template

import (
	"fmt"
	"strings"

	"github.com/spurkit/spur/internal/errors"
)

// DefaultRepo is the template repository used when --repo is not given.
const DefaultRepo = "spurkit/spur-templates"

// NormalizeRepo converts a "user/repo" shorthand into a full GitHub URL.
// Full http(s) URLs pass through unchanged.
func NormalizeRepo(repo string) string {
	if strings.HasPrefix(repo, "http://") || strings.HasPrefix(repo, "https://") {
		return repo
	}
	return "https://github.com/" + repo
}

// ParseRepo splits a repository URL or shorthand into owner and name.
// The last two path segments win, so both "user/repo" and
// "https://github.com/user/repo/" parse the same way.
func ParseRepo(repoURL string) (owner, name string, err error) {
	parts := strings.Split(strings.TrimSuffix(repoURL, "/"), "/")
	if len(parts) < 2 {
		return "", "", errors.New(errors.CategoryTemplate, "parse repository",
			fmt.Errorf("invalid repository %q", repoURL)).
			WithSuggestion("use the user/repo shorthand or a full GitHub URL")
	}
	owner = parts[len(parts)-2]
	name = parts[len(parts)-1]
	if owner == "" || name == "" {
		return "", "", errors.New(errors.CategoryTemplate, "parse repository",
			fmt.Errorf("invalid repository %q", repoURL))
	}
	return owner, name, nil
}
