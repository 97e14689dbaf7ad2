package vfs

import (
	"fmt"
	"os"

	"go.trai.ch/inch/internal/core/domain"
	"go.trai.ch/inch/internal/core/ports"
)

// Loader resolves paths the compiler asks about but that are not yet
// registered, by reading them from disk. It never invents content: a path
// absent from both registry and disk is reported absent, so the compiler
// treats the reference as unresolvable.
type Loader struct {
	registry *Registry
	tracker  *Tracker
	notifier ports.Notifier
	logger   ports.Logger
}

// NewLoader creates a loader over the given registry and tracker.
func NewLoader(registry *Registry, tracker *Tracker, notifier ports.Notifier, logger ports.Logger) *Loader {
	return &Loader{
		registry: registry,
		tracker:  tracker,
		notifier: notifier,
		logger:   logger,
	}
}

// Resolve returns the text snapshot for path on behalf of target, the build
// target currently being compiled. The target identity is threaded explicitly
// rather than held in shared mutable state, so reentrant resolution stays
// safe. Registered records are authoritative and served from memory even
// when the disk copy is gone; watch-cycle invalidation handles staleness.
// Misses are read from disk and registered at version 0; declaration files
// additionally record a dependency edge for target and are announced to the
// host, since the build tool only watches files it directly imports.
func (l *Loader) Resolve(target, path string) (string, bool) {
	if rec, ok := l.registry.Get(path); ok {
		return rec.Text, true
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// The file exists but cannot be read, which is worth surfacing
		// unlike a plain resolution miss.
		l.logger.Warn(fmt.Sprintf("reading %s: %v", path, err))
		return "", false
	}

	text := string(data)
	l.registry.Set(path, text)

	if domain.IsDeclarationPath(path) && target != "" {
		l.tracker.Record(target, path, info.ModTime())
		l.notifier.AddDependency(path)
	}

	return text, true
}
