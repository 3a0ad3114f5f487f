package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/justradojko/intellij-community/internal/metrics"
	"github.com/justradojko/intellij-community/internal/utils/fswatcher"
	"github.com/justradojko/intellij-community/pkg/logger"
)

// Watcher reloads a Model when its descriptor or .gitignore changes on disk.
type Watcher struct {
	model  *Model
	logger logger.Logger
	// onReload is called after every successful reload; tests hook it.
	onReload func()
}

func NewWatcher(model *Model, log logger.Logger) *Watcher {
	if log == nil {
		log = logger.NewNop()
	}
	return &Watcher{model: model, logger: log}
}

// OnReload registers a callback invoked after each reload.
func (w *Watcher) OnReload(fn func()) {
	w.onReload = fn
}

// Run blocks until ctx is cancelled. It returns immediately with nil when no
// project is open.
func (w *Watcher) Run(ctx context.Context) error {
	root, ok := w.model.Root()
	if !ok {
		w.logger.Debug("Project watcher idle: no project root")
		return nil
	}

	watcher, err := fswatcher.New()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	descriptor := w.model.DescriptorPath()
	descriptorDir := filepath.Dir(descriptor)
	gitignorePath := filepath.Join(root, ".gitignore")

	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("failed to watch project root: %w", err)
	}
	if descriptorDir != root {
		if _, err := os.Stat(descriptorDir); err == nil {
			if err := watcher.Add(descriptorDir); err != nil {
				w.logger.Warn("Failed to watch descriptor directory", "dir", descriptorDir, "error", err)
			}
		}
	}

	w.logger.Info("Project watcher started", "root", root, "descriptor", descriptor)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(event.Name)

			// The descriptor directory may be created after startup.
			if name == descriptorDir && fswatcher.IsCreate(event) {
				if err := watcher.Add(descriptorDir); err != nil {
					w.logger.Warn("Failed to watch descriptor directory", "dir", descriptorDir, "error", err)
				}
				continue
			}

			if name != descriptor && name != gitignorePath {
				continue
			}
			if !fswatcher.IsContentChange(event) {
				continue
			}

			w.logger.Info("Project settings changed, reloading", "file", name)
			err := w.model.Reload()
			metrics.RecordProjectReload(err)
			if err != nil {
				w.logger.Error("Failed to reload project model", "error", err)
				continue
			}
			if w.onReload != nil {
				w.onReload()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Project watcher error", "error", err)

		case <-ctx.Done():
			w.logger.Info("Project watcher stopping")
			return nil
		}
	}
}
