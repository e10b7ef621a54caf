package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadManifest points viper at a manifest written to a temp dir and runs Load.
func loadManifest(t *testing.T, content string) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "spur.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	return Load()
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.App.Name)
	assert.False(t, cfg.CSS.Enabled)
	assert.Nil(t, cfg.DevCommand())
}

func TestLoadManifest(t *testing.T) {
	cfg, err := loadManifest(t, `
app:
  name: my-app
dev:
  command: air -c .air.toml
css:
  enabled: true
  input:
    - assets/css/input.css
  output: static/css/app.css
  minify: true
  sourcemap: true
  watch_always: true
`)
	require.NoError(t, err)

	assert.Equal(t, "my-app", cfg.App.Name)
	assert.Equal(t, []string{"air", "-c", ".air.toml"}, cfg.DevCommand())
	assert.True(t, cfg.CSS.Enabled)
	assert.Equal(t, []string{"assets/css/input.css"}, cfg.CSS.Input)
	assert.Equal(t, "static/css/app.css", cfg.CSS.Output)
	assert.True(t, cfg.CSS.Minify)
	assert.True(t, cfg.CSS.Sourcemap)
	assert.True(t, cfg.CSS.WatchAlways)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetEnvPrefix("SPUR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	t.Setenv("SPUR_CSS_ENABLED", "true")
	t.Setenv("SPUR_CSS_INPUT", "in.css")
	t.Setenv("SPUR_CSS_OUTPUT", "out.css")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.CSS.Enabled)
	assert.Equal(t, []string{"in.css"}, cfg.CSS.Input)
	assert.Equal(t, "out.css", cfg.CSS.Output)
}

func TestLoadValidation(t *testing.T) {
	testCases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name: "enabled without input",
			manifest: `
css:
  enabled: true
  output: static/app.css
`,
			wantErr: "no input files",
		},
		{
			name: "enabled without output",
			manifest: `
css:
  enabled: true
  input: [assets/in.css]
`,
			wantErr: "no output file",
		},
		{
			name: "absolute input path",
			manifest: `
css:
  enabled: true
  input: [/etc/passwd]
  output: static/app.css
`,
			wantErr: "absolute paths",
		},
		{
			name: "input escapes project",
			manifest: `
css:
  enabled: true
  input: [../../other/in.css]
  output: static/app.css
`,
			wantErr: "escapes the project directory",
		},
		{
			name: "output escapes project",
			manifest: `
css:
  enabled: true
  input: [assets/in.css]
  output: ../out.css
`,
			wantErr: "escapes the project directory",
		},
		{
			name: "disabled section skips requirement checks",
			manifest: `
css:
  enabled: false
`,
			wantErr: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadManifest(t, tc.manifest)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidateProjectPath(t *testing.T) {
	testCases := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple relative", "assets/in.css", false},
		{"dot relative", "./assets/in.css", false},
		{"internal dotdot that stays inside", "assets/../static/app.css", false},
		{"empty", "", true},
		{"absolute", "/tmp/in.css", true},
		{"parent escape", "../in.css", true},
		{"deep escape", "a/../../in.css", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateProjectPath(tc.path)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDevCommand(t *testing.T) {
	testCases := []struct {
		name    string
		command string
		want    []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single word", "air", []string{"air"}},
		{"with flags", "go run . --port 8080", []string{"go", "run", ".", "--port", "8080"}},
		{"extra spacing", "  npm   run dev ", []string{"npm", "run", "dev"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Dev: DevConfig{Command: tc.command}}
			assert.Equal(t, tc.want, cfg.DevCommand())
		})
	}
}

func TestTailwindArgs(t *testing.T) {
	testCases := []struct {
		name string
		css  CSSConfig
		want []string
	}{
		{
			name: "minimal",
			css:  CSSConfig{Input: []string{"in.css"}, Output: "out.css"},
			want: []string{"-i", "in.css", "-o", "out.css", "-w"},
		},
		{
			name: "watch always",
			css:  CSSConfig{Input: []string{"in.css"}, Output: "out.css", WatchAlways: true},
			want: []string{"-i", "in.css", "-o", "out.css", "-w=always"},
		},
		{
			name: "minified with sourcemap",
			css:  CSSConfig{Input: []string{"in.css"}, Output: "out.css", Minify: true, Sourcemap: true},
			want: []string{"-i", "in.css", "-o", "out.css", "-w", "-m", "--map"},
		},
		{
			name: "only first input is passed",
			css:  CSSConfig{Input: []string{"a.css", "b.css"}, Output: "out.css"},
			want: []string{"-i", "a.css", "-o", "out.css", "-w"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.css.TailwindArgs())
		})
	}
}

func TestWatchPlan(t *testing.T) {
	t.Run("disabled yields zero plan", func(t *testing.T) {
		cfg := Config{CSS: CSSConfig{Enabled: false, Input: []string{"in.css"}, Output: "out.css"}}
		plan := cfg.WatchPlan()
		assert.False(t, plan.Enabled)
		assert.Nil(t, plan.Command)
	})

	t.Run("enabled runs tailwind through npx", func(t *testing.T) {
		cfg := Config{CSS: CSSConfig{Enabled: true, Input: []string{"in.css"}, Output: "out.css", Minify: true}}
		plan := cfg.WatchPlan()
		assert.True(t, plan.Enabled)
		assert.Equal(t, []string{"npx", "tailwindcss", "-i", "in.css", "-o", "out.css", "-w", "-m"}, plan.Command)
	})
}
