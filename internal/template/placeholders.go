package template

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spurkit/spur/internal/errors"
)

// Placeholder is the token templates embed wherever the project name belongs.
const Placeholder = "{{project_name}}"

// skipDirs are directory names never rewritten (or descended into).
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
}

// binaryExtensions identify files skipped during placeholder rewriting.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".ico": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".bin": true, ".o": true, ".a": true, ".zip": true, ".gz": true,
}

// ReplacePlaceholders walks every regular file under dir and replaces each
// occurrence of the placeholder token with name. Files without the token are
// left untouched; binary files and tooling directories are skipped.
func ReplacePlaceholders(dir, name string) error {
	walkErr := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || ShouldSkipPath(path) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rewritten := strings.ReplaceAll(string(content), Placeholder, name)
		if rewritten == string(content) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(rewritten), info.Mode().Perm())
	})

	if walkErr != nil {
		return errors.New(errors.CategoryTemplate, "replace placeholders", walkErr)
	}
	return nil
}

// ShouldSkipPath reports whether a file is excluded from placeholder
// rewriting based on its extension.
func ShouldSkipPath(path string) bool {
	return binaryExtensions[strings.ToLower(filepath.Ext(path))]
}
