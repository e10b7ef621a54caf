package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/spurkit/spur/internal/ui"
	"github.com/spurkit/spur/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild and restart the app on source changes",
	Long: `Watch project source files (.go, .templ, .html, .css) and rebuild and
restart the app on every change. This is the loop spur dev runs as its
primary watcher; it is also usable standalone when the css pipeline is not
needed.

Examples:
  spur watch                      # watch the current directory
  spur watch --debounce 500ms     # group changes over a longer window`,
	RunE: runWatchCmd,
}

var watchDebounce time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Delay for grouping rapid file changes")
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())
	logger := newLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := watcher.NewRunner(".", printer, logger)
	return runner.WatchAndRun(ctx, watchDebounce)
}
