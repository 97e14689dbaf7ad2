package ports

import "go.trai.ch/inch/internal/core/domain"

// ServiceHost is the contract a compilation session supplies to the wrapped
// compiler service.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type ServiceHost interface {
	// ScriptFileNames enumerates every script file the program consists of:
	// the configured entry files plus all registered files. Including entry
	// files keeps cross-file type inference able to traverse back into
	// configured files even when they were reached transitively.
	ScriptFileNames() []string

	// ScriptVersion returns the opaque version stamp for path, or the empty
	// string when the path is unknown. Stamp equality across two calls
	// implies the text did not change.
	ScriptVersion(path string) string

	// ScriptSnapshotFor returns the current text for path, loading it on
	// demand from disk when unregistered. target is the build target on
	// whose behalf the load happens; declaration files pulled in are
	// attributed to it. ok is false when the path resolves neither in
	// memory nor on disk.
	ScriptSnapshotFor(target, path string) (text string, ok bool)

	// CurrentDirectory returns the working directory of the program.
	CurrentDirectory() string

	// NewLine returns the newline sequence emitted output uses.
	NewLine() string

	// CompilationSettings returns the merged compiler options.
	CompilationSettings() domain.CompilerOptions

	// DefaultLibFileName resolves the standard-library file for the given
	// configuration.
	DefaultLibFileName(opts domain.CompilerOptions) string
}

// CompilerService is the opaque compiler instance behind a session. Its
// type-checking internals are outside this system; the host only manages
// inputs and outputs around it.
type CompilerService interface {
	// EmitOutput produces compiled output for path.
	EmitOutput(path string) (domain.EmitResult, error)

	// SyntacticDiagnostics reports parse-level diagnostics for the whole
	// program. These block the build: output is unusable.
	SyntacticDiagnostics() []domain.CompilerDiagnostic

	// SemanticDiagnostics reports type-level diagnostics for the whole
	// program. These do not prevent emission.
	SemanticDiagnostics() []domain.CompilerDiagnostic

	// PositionFor converts a 0-based character offset in file to a 1-based
	// line and column, using the file's own line index.
	PositionFor(file string, offset int) (line, col int)
}

// CompilerFactory constructs a compiler service bound to a host.
type CompilerFactory func(host ServiceHost) CompilerService
