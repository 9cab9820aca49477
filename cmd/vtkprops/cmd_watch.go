package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jawae/vtkprops/internal/headerscan"
	"github.com/jawae/vtkprops/internal/logging"
	"github.com/jawae/vtkprops/internal/properties"
	"github.com/jawae/vtkprops/internal/report"
)

const watchDebounce = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-run scan+synth on header changes in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}

	var mu sync.Mutex
	var timer *time.Timer
	running := false

	runOnce := func() {
		mu.Lock()
		if running {
			mu.Unlock()
			return
		}
		running = true
		mu.Unlock()

		if err := scanAndReport(cmd, dir); err != nil {
			logging.Get().Error("watch: pipeline failed", zap.Error(err))
		}

		mu.Lock()
		running = false
		mu.Unlock()
	}

	runOnce()
	logging.Get().Info("watch: watching for header changes", zap.String("dir", dir))

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isHeaderFile(event.Name) {
				continue
			}

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, runOnce)
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Get().Error("watch: fsnotify error", zap.Error(err))
		}
	}
}

func isHeaderFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".h" || ext == ".hpp" || ext == ".hxx"
}

func scanAndReport(cmd *cobra.Command, dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.h"))
	if err != nil {
		return fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(matches) == 0 {
		logging.Get().Debug("watch: no header files found", zap.String("dir", dir))
		return nil
	}

	results, err := headerscan.Scan(cmd.Context(), matches)
	if err != nil {
		return err
	}

	for _, r := range results {
		cp, err := properties.Build(r.Functions)
		if err != nil {
			return fmt.Errorf("%s: %w", r.FilePath, err)
		}
		fmt.Println(report.Render(strings.TrimSuffix(filepath.Base(r.FilePath), filepath.Ext(r.FilePath)), cp))
	}
	return nil
}
