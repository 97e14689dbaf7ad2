package vfs_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/inch/internal/vfs"
	"go.uber.org/mock/gomock"
)

func TestTracker_InvalidationOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, registry, notifier := newLoader(t, ctrl)

	dir := t.TempDir()
	decl := writeFile(t, dir, "api.d.ts", "declare const a: number;")
	notifier.EXPECT().AddDependency(decl).Times(1)

	// Register the declaration file via an on-demand load.
	_, ok := loader.Resolve("/p/main.ts", decl)
	require.True(t, ok)
	before, ok := registry.Get(decl)
	require.True(t, ok)
	beforeVersion := before.Version

	// External edit arrives between requests.
	require.NoError(t, os.WriteFile(decl, []byte("declare const a: string;"), 0o644))
	changes := map[string]int64{decl: time.Now().Add(time.Second).UnixNano()}

	sessionTracker := vfs.NewTracker(registry)
	refreshed := sessionTracker.Invalidate(changes)
	assert.Equal(t, []string{decl}, refreshed)

	// The next compile request observes the refreshed text and a strictly
	// greater version.
	after, ok := registry.Get(decl)
	require.True(t, ok)
	assert.Equal(t, "declare const a: string;", after.Text)
	assert.Greater(t, after.Version, beforeVersion)
}

func TestTracker_IgnoresNonDeclarationFiles(t *testing.T) {
	registry := vfs.NewRegistry()
	registry.Set("/p/a.ts", "let x=1")
	tracker := vfs.NewTracker(registry)

	refreshed := tracker.Invalidate(map[string]int64{"/p/a.ts": time.Now().UnixNano()})
	assert.Empty(t, refreshed)

	rec, _ := registry.Get("/p/a.ts")
	assert.Equal(t, 0, rec.Version)
}

func TestTracker_IgnoresUnregisteredPaths(t *testing.T) {
	registry := vfs.NewRegistry()
	tracker := vfs.NewTracker(registry)

	refreshed := tracker.Invalidate(map[string]int64{"/p/unknown.d.ts": time.Now().UnixNano()})
	assert.Empty(t, refreshed)
	assert.Equal(t, 0, registry.Len())
}

func TestTracker_SkipsStaleMtimes(t *testing.T) {
	dir := t.TempDir()
	decl := writeFile(t, dir, "lib.d.ts", "declare const one: 1;")

	registry := vfs.NewRegistry()
	registry.Set(decl, "declare const one: 1;")
	tracker := vfs.NewTracker(registry)
	tracker.Record("/p/main.ts", decl, time.Now())

	// A notification reporting the mtime already applied is not a change.
	stale := map[string]int64{decl: time.Now().Add(-time.Hour).UnixNano()}
	assert.Empty(t, tracker.Invalidate(stale))

	rec, _ := registry.Get(decl)
	assert.Equal(t, 0, rec.Version)
}

func TestTracker_Dependents(t *testing.T) {
	registry := vfs.NewRegistry()
	tracker := vfs.NewTracker(registry)

	now := time.Now()
	tracker.Record("/p/b.ts", "/p/types.d.ts", now)
	tracker.Record("/p/a.ts", "/p/types.d.ts", now)
	tracker.Record("/p/a.ts", "/p/types.d.ts", now)

	assert.Equal(t, []string{"/p/a.ts", "/p/b.ts"}, tracker.Dependents("/p/types.d.ts"))
	assert.Empty(t, tracker.Dependents("/p/other.d.ts"))
}

func TestTracker_UnreadableFileKeepsSnapshot(t *testing.T) {
	dir := t.TempDir()
	decl := writeFile(t, dir, "gone.d.ts", "declare const x: 1;")

	registry := vfs.NewRegistry()
	registry.Set(decl, "declare const x: 1;")
	tracker := vfs.NewTracker(registry)

	require.NoError(t, os.Remove(decl))
	refreshed := tracker.Invalidate(map[string]int64{decl: time.Now().UnixNano()})
	assert.Empty(t, refreshed)

	// Last snapshot survives; a fresh resolve would report it absent.
	rec, ok := registry.Get(decl)
	require.True(t, ok)
	assert.Equal(t, "declare const x: 1;", rec.Text)
}
