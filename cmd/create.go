package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spurkit/spur/internal/config"
	"github.com/spurkit/spur/internal/errors"
	"github.com/spurkit/spur/internal/template"
	"github.com/spurkit/spur/internal/ui"
)

var createCmd = &cobra.Command{
	Use:     "create-app <name>",
	Aliases: []string{"create"},
	Short:   "Create a new application from a template",
	Long: `Create a new application from a template hosted in a GitHub repository.

The template is a top-level directory of the repository; it is downloaded as
a tarball, copied into a new project folder named after the app, and every
{{project_name}} placeholder inside it is replaced with the app name.

Examples:
  spur create-app my-app                          # default template
  spur create-app my-app --template api           # named template
  spur create-app my-app --repo user/templates    # custom template repo
  spur create-app my-app --branch next            # custom branch`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

var (
	createTemplate string
	createRepo     string
	createBranch   string
)

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createTemplate, "template", "t", "default", "Template to use")
	createCmd.Flags().StringVarP(&createRepo, "repo", "r", template.DefaultRepo, "GitHub repository URL or shorthand (user/repo)")
	createCmd.Flags().StringVarP(&createBranch, "branch", "b", "main", "Branch to download from")
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	printer := ui.NewPrinter(cmd.OutOrStdout())
	logger := newLogger()

	if err := validateProjectName(name); err != nil {
		return err
	}

	projectDir := name
	if _, err := os.Stat(projectDir); err == nil {
		return errors.New(errors.CategoryValidation, "create project",
			fmt.Errorf("directory %q already exists", name))
	}

	printer.Header("Setting up your project...")

	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return errors.New(errors.CategoryIO, "create project directory", err)
	}

	provider := template.NewProvider(logger)
	repoURL := template.NormalizeRepo(createRepo)

	err := func() error {
		if err := provider.Fetch(cmd.Context(), repoURL, createBranch, createTemplate, projectDir); err != nil {
			return err
		}
		if err := template.ReplacePlaceholders(projectDir, name); err != nil {
			return err
		}
		if err := writeManifest(projectDir, name); err != nil {
			return err
		}
		initGitRepo(projectDir, printer)
		return nil
	}()
	if err != nil {
		// Never leave a half-scaffolded directory behind.
		printer.Warn("cleaning up %s", projectDir)
		_ = os.RemoveAll(projectDir)
		return err
	}

	printer.Blank()
	printer.Success("Project created successfully!")
	printer.Blank()
	printer.Step("cd", name)
	printer.Step("", "spur dev")
	printer.Blank()

	return nil
}

// writeManifest creates the project's spur.yml unless the template already
// shipped one.
func writeManifest(projectDir, name string) error {
	manifestPath := filepath.Join(projectDir, "spur.yml")
	if _, err := os.Stat(manifestPath); err == nil {
		return nil
	}

	manifest := config.Config{App: config.AppConfig{Name: name}}
	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return errors.New(errors.CategoryConfig, "write manifest", err)
	}
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return errors.New(errors.CategoryIO, "write manifest", err)
	}
	return nil
}

// initGitRepo initializes a git repository with an initial commit.
// Best-effort: a missing git binary degrades to a warning, never a failure.
func initGitRepo(projectDir string, printer *ui.Printer) {
	if !commandAvailable("git") {
		printer.Warn("git not found, skipping git init")
		return
	}

	run := func(args ...string) error {
		c := exec.Command("git", args...)
		c.Dir = projectDir
		return c.Run()
	}

	if err := run("init"); err != nil {
		printer.Warn("failed to initialize git repository")
		return
	}
	if err := run("add", "."); err != nil {
		return
	}
	_ = run("commit", "-m", "Initial commit from spur")
}
