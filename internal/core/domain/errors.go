package domain

import "go.trai.ch/zerr"

var (
	// ErrEmitSkipped is returned when the compiler declines to emit output
	// for the active build target (unknown or unparsable file).
	ErrEmitSkipped = zerr.New("file not found or unparsable, emit skipped")

	// ErrFileNotFound is returned when a file exists neither in the registry
	// nor on disk.
	ErrFileNotFound = zerr.New("file not found")

	// ErrConfigNotFound is returned when no project configuration file can be
	// discovered from the build context.
	ErrConfigNotFound = zerr.New("could not find project configuration file")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrQueryParseFailed is returned when build-tool query parameters are malformed.
	ErrQueryParseFailed = zerr.New("failed to parse query parameters")

	// ErrSessionConstructFailed is returned when a compilation session cannot
	// be constructed for a configuration key.
	ErrSessionConstructFailed = zerr.New("failed to construct compilation session")

	// ErrNoResourceSpecified is returned when a compile request names no build target.
	ErrNoResourceSpecified = zerr.New("no resource specified")

	// ErrResourceReadFailed is returned when the build target cannot be read
	// from disk for a CLI-driven compile.
	ErrResourceReadFailed = zerr.New("failed to read resource file")

	// ErrWatchStartFailed is returned when the file system watcher cannot be started.
	ErrWatchStartFailed = zerr.New("failed to start file system watcher")

	// ErrSourceMapAssembly is returned when an emitted source map cannot be decoded.
	ErrSourceMapAssembly = zerr.New("failed to decode emitted source map")

	// ErrCompileFailed is returned when a compile request produced
	// build-blocking syntax errors.
	ErrCompileFailed = zerr.New("compilation failed")
)
