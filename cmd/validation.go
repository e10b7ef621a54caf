package cmd

import (
	"fmt"
	"os/exec"
	"regexp"

	"github.com/spurkit/spur/internal/errors"
)

// projectNameRe enforces names usable as directory names, module suffixes,
// and placeholder substitutions: start with a letter, then letters, digits,
// hyphens, underscores.
var projectNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// validateProjectName checks a create-app project name.
func validateProjectName(name string) error {
	if !projectNameRe.MatchString(name) {
		return errors.New(errors.CategoryValidation, "validate project name",
			fmt.Errorf("invalid project name %q", name)).
			WithSuggestion("names must start with a letter and contain only letters, numbers, hyphens, and underscores")
	}
	return nil
}

// commandAvailable reports whether an executable can be found on PATH.
func commandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
