// Package notify implements the build notifier adapter. Dependencies
// registered by compilation sessions are collected here so the surrounding
// tool can re-trigger builds when they change, and non-fatal problems are
// surfaced as warnings instead of failing the build.
package notify

import (
	"fmt"
	"sort"
	"sync"

	"go.trai.ch/inch/internal/core/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier records declaration-file dependencies and forwards warnings to
// the logger. Safe for use from concurrent compilations.
type Notifier struct {
	logger ports.Logger

	mu   sync.Mutex
	deps map[string]struct{}
}

// New creates a Notifier backed by the given logger.
func New(logger ports.Logger) *Notifier {
	return &Notifier{
		logger: logger,
		deps:   make(map[string]struct{}),
	}
}

// AddDependency registers a file the current build output depends on.
func (n *Notifier) AddDependency(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.deps[path] = struct{}{}
}

// Warning reports a non-fatal problem.
func (n *Notifier) Warning(err error) {
	n.logger.Warn(fmt.Sprintf("%v", err))
}

// Dependencies returns all registered dependency paths, sorted.
func (n *Notifier) Dependencies() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.deps))
	for path := range n.deps {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}
