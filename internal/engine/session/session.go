// Package session implements compilation sessions and their process-wide
// registry. A session wraps one long-lived compiler-service instance bound to
// one virtual file registry, keyed by project configuration identity.
package session

import (
	"path/filepath"
	"sync"

	"go.trai.ch/inch/internal/core/domain"
	"go.trai.ch/inch/internal/core/ports"
	"go.trai.ch/inch/internal/diag"
	"go.trai.ch/inch/internal/vfs"
	"go.trai.ch/zerr"
)

// Config carries everything needed to construct a session. Options arrive
// fully merged; configuration resolution happens once, at construction.
type Config struct {
	// Key is the configuration identity of the session.
	Key string
	// Options are the merged compiler options, forced fields included.
	Options domain.CompilerOptions
	// EntryFiles are the configured root files of the program.
	EntryFiles []string
	// WorkingDir is the build context root.
	WorkingDir string
	// Factory constructs the wrapped compiler service.
	Factory ports.CompilerFactory
	// Notifier carries dependency and warning callbacks to the host.
	Notifier ports.Notifier
	// Logger receives session lifecycle messages.
	Logger ports.Logger
}

// Session binds one compiler service to one virtual file registry. All state
// is private to the session: records are never shared across sessions. A
// session-wide mutex serializes the mutating entry points, so a watch-cycle
// invalidation never interleaves with a compile against the same registry
// and version stamps stay monotonic.
type Session struct {
	// mu guards every entry point that reads or mutates the registry.
	mu sync.Mutex

	key        string
	options    domain.CompilerOptions
	entryFiles []string
	workingDir string

	registry *vfs.Registry
	loader   *vfs.Loader
	tracker  *vfs.Tracker
	service  ports.CompilerService
}

var _ ports.ServiceHost = (*Session)(nil)

// New constructs a session and boots its compiler service. Bootstrapping the
// service is the dominant latency in the system, which is why sessions are
// cached for the process lifetime.
func New(cfg Config) *Session {
	registry := vfs.NewRegistry()
	tracker := vfs.NewTracker(registry)
	loader := vfs.NewLoader(registry, tracker, cfg.Notifier, cfg.Logger)

	s := &Session{
		key:        cfg.Key,
		options:    cfg.Options,
		entryFiles: cfg.EntryFiles,
		workingDir: cfg.WorkingDir,
		registry:   registry,
		loader:     loader,
		tracker:    tracker,
	}
	s.service = cfg.Factory(s)
	return s
}

// Key returns the configuration identity of the session.
func (s *Session) Key() string { return s.key }

// UpdateAndEmit sets the registry text for path (bumping its version) and
// asks the compiler for emitted output. A skipped emit means the compiler
// considers the file unknown or unparsable; that surfaces as a hard error for
// this single request and never corrupts the session's cache for other files.
func (s *Session) UpdateAndEmit(path, text string) (domain.EmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry.Set(path, text)

	result, err := s.service.EmitOutput(path)
	if err != nil {
		return domain.EmitResult{}, zerr.Wrap(err, "emit failed")
	}
	if result.Skipped {
		return domain.EmitResult{}, zerr.With(domain.ErrEmitSkipped, "path", path)
	}
	return result, nil
}

// Diagnostics collects program-wide diagnostics, translated. Semantic
// diagnostics come back as non-fatal warnings; syntactic diagnostics as
// build-blocking errors. Syntax errors make output unusable while type
// errors do not prevent emission.
func (s *Session) Diagnostics() (warnings, errors []domain.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	translator := diag.NewTranslator(s.service, s.workingDir)
	warnings = translator.TranslateAll(s.service.SemanticDiagnostics())
	errors = translator.TranslateAll(s.service.SyntacticDiagnostics())
	return warnings, errors
}

// Invalidate applies one external watch cycle to this session's registry.
func (s *Session) Invalidate(changes map[string]int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tracker.Invalidate(changes)
}

// ScriptFileNames returns the configured entry files plus every registered
// file, deduplicated and stable. Entry files are listed even before their
// first registration so cross-file type inference can traverse back into
// configured files reached transitively.
func (s *Session) ScriptFileNames() []string {
	seen := make(map[string]struct{}, len(s.entryFiles)+s.registry.Len())
	names := make([]string, 0, len(s.entryFiles)+s.registry.Len())
	for _, name := range s.entryFiles {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, name := range s.registry.Paths() {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// ScriptVersion returns the opaque version stamp for path, empty when unknown.
func (s *Session) ScriptVersion(path string) string {
	rec, ok := s.registry.Get(path)
	if !ok {
		return ""
	}
	return rec.Stamp()
}

// ScriptSnapshotFor returns the text for path, loading on demand on behalf
// of target.
func (s *Session) ScriptSnapshotFor(target, path string) (string, bool) {
	return s.loader.Resolve(target, path)
}

// CurrentDirectory returns the build context root.
func (s *Session) CurrentDirectory() string { return s.workingDir }

// NewLine returns the configured newline sequence.
func (s *Session) NewLine() string { return s.options.NewLine }

// CompilationSettings returns the merged compiler options.
func (s *Session) CompilationSettings() domain.CompilerOptions { return s.options }

// DefaultLibFileName resolves the standard-library file for the given
// configuration, relative to the working directory when not absolute.
func (s *Session) DefaultLibFileName(opts domain.CompilerOptions) string {
	lib := opts.Lib
	if lib == "" {
		lib = domain.DefaultOptions().Lib
	}
	if filepath.IsAbs(lib) {
		return lib
	}
	return filepath.Join(s.workingDir, lib)
}
