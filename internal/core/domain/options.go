package domain

import "runtime"

// CompilerOptions is the merged compiler configuration for one session.
// Fields are enumerated explicitly; merging is a defined precedence order
// rather than duck-typed property overwrite:
//
//	built-in defaults < project configuration file < query overrides < forced fields
type CompilerOptions struct {
	// Target is the emitted language level (e.g. "es5", "es2017").
	Target string
	// Module is the emitted module format (e.g. "commonjs", "esnext").
	Module string
	// SourceMap enables source-map emission. Always forced from the active
	// request, never overridable by configuration.
	SourceMap bool
	// Declaration enables declaration-text emission alongside code.
	Declaration bool
	// Strict enables strict semantic checks in the wrapped compiler.
	Strict bool
	// NewLine is the newline sequence used in emitted output.
	NewLine string
	// Lib is the default standard-library file name for the configuration.
	Lib string
	// OutDir is the output directory hint for emitted file names.
	OutDir string
}

// OptionOverrides is a sparse patch applied on top of CompilerOptions.
// Nil fields leave the underlying value untouched.
type OptionOverrides struct {
	Target      *string
	Module      *string
	SourceMap   *bool
	Declaration *bool
	Strict      *bool
	NewLine     *string
	Lib         *string
	OutDir      *string
}

// DefaultOptions returns the built-in configuration defaults.
func DefaultOptions() CompilerOptions {
	newline := "\n"
	if runtime.GOOS == "windows" {
		newline = "\r\n"
	}
	return CompilerOptions{
		Target:  "es5",
		Module:  "commonjs",
		NewLine: newline,
		Lib:     "lib.d.ts",
	}
}

// Apply returns the options with the non-nil fields of o laid on top.
func (c CompilerOptions) Apply(o OptionOverrides) CompilerOptions {
	if o.Target != nil {
		c.Target = *o.Target
	}
	if o.Module != nil {
		c.Module = *o.Module
	}
	if o.SourceMap != nil {
		c.SourceMap = *o.SourceMap
	}
	if o.Declaration != nil {
		c.Declaration = *o.Declaration
	}
	if o.Strict != nil {
		c.Strict = *o.Strict
	}
	if o.NewLine != nil {
		c.NewLine = *o.NewLine
	}
	if o.Lib != nil {
		c.Lib = *o.Lib
	}
	if o.OutDir != nil {
		c.OutDir = *o.OutDir
	}
	return c
}

// ProjectConfig is the one-time resolved configuration for a session:
// merged compiler options plus the configured entry files.
type ProjectConfig struct {
	// Options are the merged compiler options, before forced fields.
	Options CompilerOptions
	// EntryFiles are the configured root files of the program, absolute.
	EntryFiles []string
	// ConfigPath is the discovered configuration file, empty when defaulted.
	ConfigPath string
}

// DefaultProjectConfig is the configuration used when resolution fails:
// built-in defaults and no configured entry files.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{Options: DefaultOptions()}
}
