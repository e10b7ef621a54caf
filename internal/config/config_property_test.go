//go:build property
// +build property

package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestConfigProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("absolute paths are always rejected", prop.ForAll(
		func(rel string) bool {
			return validateProjectPath(filepath.Join("/", rel)) != nil
		},
		gen.RegexMatch(`[a-z]{1,8}(/[a-z]{1,8}){0,3}`),
	))

	properties.Property("relative paths without dotdot are always accepted", prop.ForAll(
		func(rel string) bool {
			return validateProjectPath(rel) == nil
		},
		gen.RegexMatch(`[a-z]{1,8}(/[a-z]{1,8}){0,3}\.css`),
	))

	properties.Property("tailwind args carry exactly one watch flag", prop.ForAll(
		func(input, output string, always, minify, sourcemap bool) bool {
			css := CSSConfig{
				Input:       []string{input},
				Output:      output,
				WatchAlways: always,
				Minify:      minify,
				Sourcemap:   sourcemap,
			}
			watchFlags := 0
			for _, arg := range css.TailwindArgs() {
				if arg == "-w" || arg == "-w=always" {
					watchFlags++
				}
			}
			return watchFlags == 1
		},
		gen.RegexMatch(`[a-z]{1,8}\.css`),
		gen.RegexMatch(`[a-z]{1,8}\.css`),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("dev command fields never contain whitespace", prop.ForAll(
		func(command string) bool {
			cfg := Config{Dev: DevConfig{Command: command}}
			for _, field := range cfg.DevCommand() {
				if strings.ContainsAny(field, " \t\n") || field == "" {
					return false
				}
			}
			return true
		},
		gen.RegexMatch(`[a-z \t]{0,30}`),
	))

	properties.TestingRun(t)
}
