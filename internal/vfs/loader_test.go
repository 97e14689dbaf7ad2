package vfs_test

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/inch/internal/core/ports/mocks"
	"go.trai.ch/inch/internal/vfs"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, ctrl *gomock.Controller) (*vfs.Loader, *vfs.Registry, *mocks.MockNotifier) {
	t.Helper()

	registry := vfs.NewRegistry()
	tracker := vfs.NewTracker(registry)
	notifier := mocks.NewMockNotifier(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	return vfs.NewLoader(registry, tracker, notifier, logger), registry, notifier
}

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoader_RegistryHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, registry, _ := newLoader(t, ctrl)
	registry.Set("/p/a.ts", "registered text")

	text, ok := loader.Resolve("/p/main.ts", "/p/a.ts")
	require.True(t, ok)
	assert.Equal(t, "registered text", text)
}

func TestLoader_LazyLoadIdempotence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, registry, _ := newLoader(t, ctrl)
	path := writeFile(t, t.TempDir(), "util.ts", "export const n = 1")

	first, ok := loader.Resolve("/p/main.ts", path)
	require.True(t, ok)
	second, ok := loader.Resolve("/p/main.ts", path)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, registry.Len())

	rec, ok := registry.Get(path)
	require.True(t, ok)
	assert.Equal(t, 0, rec.Version)
}

func TestLoader_AbsentFileSignaling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, registry, _ := newLoader(t, ctrl)
	missing := filepath.Join(t.TempDir(), "gone.ts")

	_, ok := loader.Resolve("/p/main.ts", missing)
	assert.False(t, ok)
	_, registered := registry.Get(missing)
	assert.False(t, registered)
}

func TestLoader_RegisteredRecordOutlivesDiskCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, _, _ := newLoader(t, ctrl)
	path := writeFile(t, t.TempDir(), "edited.ts", "export const n = 1")

	first, ok := loader.Resolve("/p/main.ts", path)
	require.True(t, ok)

	// Deleting the disk copy does not evict the record; watch-cycle
	// invalidation owns staleness.
	require.NoError(t, os.Remove(path))

	second, ok := loader.Resolve("/p/main.ts", path)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestLoader_UnreadableFileWarnsAndSignalsAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := vfs.NewRegistry()
	tracker := vfs.NewTracker(registry)
	notifier := mocks.NewMockNotifier(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	loader := vfs.NewLoader(registry, tracker, notifier, logger)

	// A socket stats fine but cannot be read as a file.
	path := filepath.Join(t.TempDir(), "odd.ts")
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	logger.EXPECT().Warn(gomock.Any()).Times(1)

	_, ok := loader.Resolve("/p/main.ts", path)
	assert.False(t, ok)
	_, registered := registry.Get(path)
	assert.False(t, registered)
}

func TestLoader_DeclarationFileRegistersDependency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, registry, notifier := newLoader(t, ctrl)
	decl := writeFile(t, t.TempDir(), "types.d.ts", "declare const v: number;")

	notifier.EXPECT().AddDependency(decl).Times(1)

	text, ok := loader.Resolve("/p/main.ts", decl)
	require.True(t, ok)
	assert.Equal(t, "declare const v: number;", text)

	rec, ok := registry.Get(decl)
	require.True(t, ok)
	assert.Equal(t, 0, rec.Version)

	// The second resolve hits the registry and does not re-announce.
	_, ok = loader.Resolve("/p/main.ts", decl)
	assert.True(t, ok)
}

func TestLoader_PlainFileDoesNotNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, _, _ := newLoader(t, ctrl)
	src := writeFile(t, t.TempDir(), "helper.ts", "export {}")

	// No AddDependency expectation: a call would fail the controller.
	_, ok := loader.Resolve("/p/main.ts", src)
	assert.True(t, ok)
}

func TestLoader_NoTargetSkipsDependencyEdge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader, _, _ := newLoader(t, ctrl)
	decl := writeFile(t, t.TempDir(), "ambient.d.ts", "declare const g: string;")

	// Without an in-flight build target there is no edge to attribute.
	_, ok := loader.Resolve("", decl)
	assert.True(t, ok)
}
