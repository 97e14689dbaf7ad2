package vfs

import (
	"os"
	"sort"
	"time"

	"go.trai.ch/inch/internal/core/domain"
)

// Tracker routes external change notifications to the right registry entries.
// It records which declaration files were pulled in per build target, and
// applies one watch cycle at a time: every declaration file present in the
// registry whose reported modification time is newer than the last applied
// one is refreshed from disk with a version bump, before the next compile
// request is served.
type Tracker struct {
	registry *Registry
	// dependents maps a declaration path to the build targets that pulled it in.
	dependents map[string]map[string]struct{}
	// applied maps a declaration path to the last modification time applied,
	// in UnixNano. A notification reporting an mtime at or before this one is
	// not a change.
	applied map[string]int64
}

// NewTracker creates a tracker over the given registry.
func NewTracker(registry *Registry) *Tracker {
	return &Tracker{
		registry:   registry,
		dependents: make(map[string]map[string]struct{}),
		applied:    make(map[string]int64),
	}
}

// Record notes that the declaration file decl was loaded while compiling
// target, at the given on-disk modification time.
func (t *Tracker) Record(target, decl string, mtime time.Time) {
	targets, ok := t.dependents[decl]
	if !ok {
		targets = make(map[string]struct{})
		t.dependents[decl] = targets
	}
	targets[target] = struct{}{}

	if stamp := mtime.UnixNano(); stamp > t.applied[decl] {
		t.applied[decl] = stamp
	}
}

// Dependents returns the build targets recorded for decl, sorted.
func (t *Tracker) Dependents(decl string) []string {
	targets := make([]string, 0, len(t.dependents[decl]))
	for target := range t.dependents[decl] {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	return targets
}

// Invalidate applies one watch cycle. changes maps changed paths to their
// modification times in UnixNano. Only declaration files present in the
// registry are considered; each one with a newer mtime has its text refreshed
// from disk and its version incremented. The refreshed paths are returned.
func (t *Tracker) Invalidate(changes map[string]int64) []string {
	var refreshed []string
	for path, mtime := range changes {
		if !domain.IsDeclarationPath(path) {
			continue
		}
		if _, ok := t.registry.Get(path); !ok {
			continue
		}
		if last, ok := t.applied[path]; ok && mtime <= last {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			// Deleted or unreadable: keep the last snapshot. The next
			// resolve for a fresh session reports it absent.
			continue
		}

		t.registry.Set(path, string(data))
		t.applied[path] = mtime
		refreshed = append(refreshed, path)
	}
	sort.Strings(refreshed)
	return refreshed
}
