// Package vfs implements the in-memory virtual file layer the compiler sees:
// a versioned registry of text snapshots, an on-demand loader for files the
// compiler asks about but was never handed, and an invalidation tracker that
// routes external change notifications to registered declaration files.
package vfs

import (
	"sort"

	"go.trai.ch/inch/internal/core/domain"
)

// Registry maps absolute file paths to versioned text snapshots. It owns all
// mutable state about what text the compiler currently sees for a file and
// never touches disk. The registry itself is unsynchronized; the owning
// session holds its lock across every entry point that reaches it.
type Registry struct {
	files map[string]*domain.FileRecord
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{files: make(map[string]*domain.FileRecord)}
}

// Get returns the record for path, or false when the path is unknown.
func (r *Registry) Get(path string) (*domain.FileRecord, bool) {
	rec, ok := r.files[path]
	return rec, ok
}

// Set registers path at version 0 when absent, otherwise overwrites the text
// and increments the version. The version bumps even when text is unchanged;
// content-equality short-circuiting is not part of the contract.
func (r *Registry) Set(path, text string) {
	if rec, ok := r.files[path]; ok {
		rec.Text = text
		rec.Version++
		return
	}
	r.files[path] = &domain.FileRecord{Path: path, Version: 0, Text: text}
}

// Remove drops the record for path, if any.
func (r *Registry) Remove(path string) {
	delete(r.files, path)
}

// Paths returns all registered paths in sorted order, so program enumeration
// stays deterministic across requests.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.files))
	for path := range r.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of registered files.
func (r *Registry) Len() int {
	return len(r.files)
}
