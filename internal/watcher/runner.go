package watcher

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/spurkit/spur/internal/logging"
	"github.com/spurkit/spur/internal/ui"
)

// binDir holds the rebuild output inside the project.
const binDir = ".spur/bin"

// Runner rebuilds the project and (re)starts the resulting binary. It keeps
// at most one app process alive; Restart kills the previous one and waits
// for it before building again, so two app instances never overlap.
type Runner struct {
	dir     string
	printer *ui.Printer
	logger  logging.Logger

	mu      sync.Mutex
	current *exec.Cmd
	done    chan struct{}
}

// NewRunner creates a runner for the project rooted at dir.
func NewRunner(dir string, printer *ui.Printer, logger logging.Logger) *Runner {
	if printer == nil {
		printer = ui.NewPrinter(nil)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Runner{
		dir:     dir,
		printer: printer,
		logger:  logger.WithComponent("runner"),
	}
}

// Restart stops the running app (if any), rebuilds, and starts the new
// binary. A failed build leaves the loop alive: the previous app stays down
// and the next change retries.
func (r *Runner) Restart(ctx context.Context) error {
	r.Stop()

	binary := filepath.Join(r.dir, binDir, "app")
	if err := os.MkdirAll(filepath.Dir(binary), 0o755); err != nil {
		return err
	}

	build := exec.CommandContext(ctx, "go", "build", "-o", binary, ".")
	build.Dir = r.dir
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		r.printer.Warn("build failed: %v", err)
		return err
	}

	app := exec.Command(binary)
	app.Dir = r.dir
	app.Stdout = os.Stdout
	app.Stderr = os.Stderr
	if err := app.Start(); err != nil {
		r.printer.Warn("failed to start app: %v", err)
		return err
	}

	done := make(chan struct{})
	go func() {
		_ = app.Wait()
		close(done)
	}()

	r.mu.Lock()
	r.current = app
	r.done = done
	r.mu.Unlock()

	r.logger.Debug(ctx, "app restarted", "pid", app.Process.Pid)
	return nil
}

// Stop kills the running app and waits for it to exit. Safe to call when
// nothing is running.
func (r *Runner) Stop() {
	r.mu.Lock()
	current := r.current
	done := r.done
	r.current = nil
	r.done = nil
	r.mu.Unlock()

	if current == nil {
		return
	}
	if current.Process != nil {
		_ = current.Process.Kill()
	}
	if done != nil {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			r.logger.Warn(context.Background(), nil, "app did not exit after kill")
		}
	}
}

// WatchAndRun performs the initial build-and-run and then blocks, rebuilding
// on every debounced source change, until the context is cancelled.
func (r *Runner) WatchAndRun(ctx context.Context, debounce time.Duration) error {
	fw, err := NewFileWatcher(debounce)
	if err != nil {
		return err
	}
	defer fw.Stop()

	fw.AddFilter(SourceFilter)
	fw.AddFilter(NoTestFilter)
	fw.AddFilter(NoHiddenFilter)

	fw.AddHandler(func(events []ChangeEvent) {
		r.printer.Status("%d file(s) changed, rebuilding", len(events))
		_ = r.Restart(ctx)
	})

	if err := fw.AddRecursive(r.dir); err != nil {
		return err
	}

	fw.Start(ctx)

	// Initial run; a broken tree at startup is not fatal, the first edit
	// triggers a retry.
	_ = r.Restart(ctx)

	<-ctx.Done()
	r.Stop()
	return nil
}
