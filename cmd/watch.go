package cmd

import (
	"BlueprintDock/internal/config"
	"BlueprintDock/internal/logger"
	"BlueprintDock/internal/meta"
	"context"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor write/rename bursts into one run.
const debounceDelay = 250 * time.Millisecond

// runWatch re-normalizes the index whenever it changes on disk. The write is
// skipped when the output would be identical so the watcher does not react
// to its own writes. Runs until interrupted.
func runWatch(ctx context.Context, procOpts meta.Options, opts *Options, conf config.AppConfig) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	procOpts.SkipUnchangedWrite = true

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error(ctx, "Failed to create watcher: %v", err)
		return 1
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files by rename,
	// which drops a plain file watch.
	dir := filepath.Dir(procOpts.InputFile)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		logger.Error(ctx, "Failed to watch '{{_Folder_}}%s{{|-|}}': %v", dir, err)
		return 1
	}

	target := filepath.Base(procOpts.InputFile)
	logger.Notice(ctx, "Watching '{{_File_}}%s{{|-|}}' for changes.", procOpts.InputFile)

	// Initial pass before waiting for events
	process := func() {
		p := meta.NewProcessor(procOpts)
		sum, err := p.Process(ctx)
		if err != nil {
			logger.Error(ctx, err.Error())
			return
		}
		if sum.Written {
			sum.Log(ctx)
		}
	}
	process()

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			logger.Notice(ctx, "Stopping watch.")
			return 0
		case event, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			process()
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			logger.Warn(ctx, "Watch error: %v", err)
		}
	}
}
