// Package watcher implements file system watching for watch-mode rebuilds.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/inch/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// skipDirectories are directories never worth watching.
var skipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
	"dist":         true,
}

const eventChannelBuffer = 100

// Watcher implements recursive file system watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan ports.WatchEvent
}

// NewWatcher creates a file system watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	for dir := range w.directoriesUnder(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.pump(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator over file system events. The iterator ends when
// the watcher stops or its context is cancelled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// directoriesUnder yields every watchable directory below root. Unreadable
// directories are skipped rather than failing the walk.
func (w *Watcher) directoriesUnder(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr
			}
			if !d.IsDir() {
				return nil
			}
			if skipDirectories[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// pump converts raw fsnotify events into ports.WatchEvent values and keeps
// the watch set current as directories appear.
func (w *Watcher) pump(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			converted, ok := convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- converted:
			case <-ctx.Done():
				return
			}

			if converted.Operation == ports.OpCreate {
				w.watchIfDirectory(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watch error: " + err.Error())
		}
	}
}

// watchIfDirectory adds a freshly created directory tree to the watch set.
func (w *Watcher) watchIfDirectory(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || skipDirectories[info.Name()] {
		return
	}
	for dir := range w.directoriesUnder(path) {
		_ = w.fsWatcher.Add(dir)
	}
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		op = ports.OpWrite
	case event.Op&fsnotify.Create == fsnotify.Create:
		op = ports.OpCreate
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		op = ports.OpRemove
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
