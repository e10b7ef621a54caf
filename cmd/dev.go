package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spurkit/spur/internal/config"
	"github.com/spurkit/spur/internal/supervisor"
	"github.com/spurkit/spur/internal/ui"
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the project with rebuild-on-change",
	Long: `Run the project in development mode: the app is rebuilt and restarted on
every source change. When the manifest's css section is enabled, a Tailwind
watcher runs alongside it.

The two watchers have linked lifetimes. Stopping either one (ctrl+c, a
crash, or a clean exit) stops both; a crash propagates the failing watcher's
exit code as spur's own exit code.`,
	RunE: runDev,
}

func init() {
	rootCmd.AddCommand(devCmd)
}

func runDev(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	plan := cfg.WatchPlan()
	if plan.Enabled && !commandAvailable("npx") {
		printer.Warn("css watching enabled but npx was not found")
		printer.Warn("install Node.js to use the Tailwind watcher")
		printer.Blank()
		plan = supervisor.WatchPlan{}
	}

	primary := cfg.DevCommand()
	if primary == nil {
		primary = selfWatchCommand()
	}

	printer.Header("spur dev")

	sup := supervisor.New(printer, logger)
	outcome, err := sup.Run(cmd.Context(), primary, plan)
	if err != nil {
		return err
	}

	if outcome.Failed {
		return &exitCodeError{
			code: outcome.Code,
			err:  fmt.Errorf("%s watcher exited with code %d", outcome.Role, outcome.Code),
		}
	}
	return nil
}

// selfWatchCommand builds the default primary command: this binary's own
// watch mode. Falling back to the bare name lets PATH resolution handle the
// unlikely case where the executable path cannot be determined.
func selfWatchCommand() []string {
	exe, err := os.Executable()
	if err != nil {
		exe = "spur"
	}
	return []string{exe, "watch"}
}
