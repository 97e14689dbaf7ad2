// Package app implements the application layer for inch.
package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.trai.ch/inch/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/inch/internal/core/domain"
	"go.trai.ch/inch/internal/core/ports"
	"go.trai.ch/inch/internal/engine/session"
	"go.trai.ch/zerr"
)

// debounceWindow batches rapid watch events into one invalidation cycle.
const debounceWindow = 250 * time.Millisecond

// App represents the main application logic.
type App struct {
	sessions *session.Registry
	config   ports.ConfigLoader
	factory  ports.CompilerFactory
	notifier ports.Notifier
	watcher  ports.Watcher
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	sessions *session.Registry,
	config ports.ConfigLoader,
	factory ports.CompilerFactory,
	notifier ports.Notifier,
	watch ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		sessions: sessions,
		config:   config,
		factory:  factory,
		notifier: notifier,
		watcher:  watch,
		logger:   log,
	}
}

// Outcome is the full answer to one compile request: the assembled result
// plus the program-wide diagnostics observed afterwards.
type Outcome struct {
	Result domain.CompileResult
	// Warnings are non-fatal type problems.
	Warnings []domain.Diagnostic
	// Errors are build-blocking syntax problems.
	Errors []domain.Diagnostic
}

// Compile runs one per-file compile request against the session for its
// configuration, creating the session on first use. Configuration problems
// are reported as warnings and compilation proceeds on defaults.
func (a *App) Compile(_ context.Context, req domain.CompileRequest) (Outcome, error) {
	if req.ResourcePath == "" {
		return Outcome{}, domain.ErrNoResourceSpecified
	}

	key := domain.SessionKey(req.BuildContext, req.Query)
	s, err := a.sessions.GetOrCreate(key, func() (session.Config, error) {
		return a.resolveSession(req)
	})
	if err != nil {
		return Outcome{}, err
	}

	emit, err := s.UpdateAndEmit(req.ResourcePath, req.Content)
	if err != nil {
		return Outcome{}, err
	}

	result, err := assembleResult(req, emit)
	if err != nil {
		return Outcome{}, err
	}

	warnings, errors := s.Diagnostics()
	for _, w := range warnings {
		a.notifier.Warning(zerr.New(w.Format()))
	}
	return Outcome{Result: result, Warnings: warnings, Errors: errors}, nil
}

// resolveSession turns a compile request into a session configuration. A
// failed configuration lookup degrades to defaults with a warning rather
// than failing the build.
func (a *App) resolveSession(req domain.CompileRequest) (session.Config, error) {
	pc, err := a.config.Resolve(req.BuildContext, req.Query)
	if err != nil {
		a.notifier.Warning(err)
	}

	opts := pc.Options
	if req.SourceMapRequested {
		// The requesting build tool wants maps regardless of configuration.
		opts.SourceMap = true
	}

	return session.Config{
		Options:    opts,
		EntryFiles: pc.EntryFiles,
		WorkingDir: req.BuildContext,
		Factory:    a.factory,
		Notifier:   a.notifier,
		Logger:     a.logger,
	}, nil
}

// BuildDiagnostics collects program-wide diagnostics across every live
// session. The severity split survives aggregation: semantic problems stay
// warnings, syntactic problems stay errors.
func (a *App) BuildDiagnostics() (warnings, errors []domain.Diagnostic) {
	for _, s := range a.sessions.All() {
		w, e := s.Diagnostics()
		warnings = append(warnings, w...)
		errors = append(errors, e...)
	}
	return warnings, errors
}

// Invalidate applies one watch cycle to every live session and returns the
// union of refreshed declaration paths.
func (a *App) Invalidate(changes map[string]int64) []string {
	seen := make(map[string]struct{})
	for _, s := range a.sessions.All() {
		for _, path := range s.Invalidate(changes) {
			seen[path] = struct{}{}
		}
	}
	refreshed := make([]string, 0, len(seen))
	for path := range seen {
		refreshed = append(refreshed, path)
	}
	sort.Strings(refreshed)
	return refreshed
}

// Watch compiles the request once, then recompiles on batched file system
// changes under the build context until the context is cancelled.
func (a *App) Watch(ctx context.Context, req domain.CompileRequest) error {
	a.runCycle(ctx, req)

	if err := a.watcher.Start(ctx, req.BuildContext); err != nil {
		return zerr.Wrap(err, domain.ErrWatchStartFailed.Error())
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	debouncer := watcher.NewDebouncer(debounceWindow, func(paths []string) {
		a.applyChanges(paths)
		a.runCycle(ctx, req)
	})

	a.logger.Info("watching " + req.BuildContext)
	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}
	debouncer.Flush()
	return nil
}

// applyChanges stamps the changed paths and invalidates affected sessions.
func (a *App) applyChanges(paths []string) {
	changes := make(map[string]int64, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		switch {
		case err != nil:
			// Deleted or unreadable; stamp with now so the change is not
			// mistaken for stale.
			changes[path] = time.Now().UnixNano()
		case info.IsDir():
			continue
		default:
			changes[path] = info.ModTime().UnixNano()
		}
	}
	for _, path := range a.Invalidate(changes) {
		a.logger.Info("reloaded " + path)
	}
}

// runCycle performs one watch-mode compile of the request, reading the
// resource fresh from disk and logging the outcome.
func (a *App) runCycle(ctx context.Context, req domain.CompileRequest) {
	content, err := os.ReadFile(req.ResourcePath)
	if err != nil {
		a.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrResourceReadFailed.Error()), "path", req.ResourcePath))
		return
	}
	req.Content = string(content)

	outcome, err := a.Compile(ctx, req)
	if err != nil {
		a.logger.Error(err)
		return
	}
	for _, d := range outcome.Errors {
		a.logger.Error(zerr.New(d.Format()))
	}
	a.logger.Info("compiled " + req.ResourcePath)
}

// assembleResult folds emitted output files into one compile result. The
// source map is rewritten to reference the request's resource and carry its
// content inline, so debuggers resolve sources without extra round trips.
func assembleResult(req domain.CompileRequest, emit domain.EmitResult) (domain.CompileResult, error) {
	var res domain.CompileResult
	for _, out := range emit.Outputs {
		switch {
		case strings.HasSuffix(out.Name, ".js.map"):
			var m domain.SourceMap
			if err := json.Unmarshal([]byte(out.Text), &m); err != nil {
				return res, zerr.Wrap(err, domain.ErrSourceMapAssembly.Error())
			}
			m.Sources = []string{sourceReference(req)}
			m.SourcesContent = []string{req.Content}
			res.SourceMap = &m
		case strings.HasSuffix(out.Name, domain.DeclarationSuffix):
			res.Declaration = out.Text
		case strings.HasSuffix(out.Name, ".js"):
			res.Code = out.Text
		}
	}
	return res, nil
}

// sourceReference names the request's resource relative to the build context
// when possible, absolute otherwise.
func sourceReference(req domain.CompileRequest) string {
	rel, err := filepath.Rel(req.BuildContext, req.ResourcePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return req.ResourcePath
	}
	return filepath.ToSlash(rel)
}
