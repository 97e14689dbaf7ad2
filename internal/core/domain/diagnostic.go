package domain

import "fmt"

// CompilerDiagnostic is a diagnostic as reported by the compiler service,
// before translation into a build-tool-agnostic record.
type CompilerDiagnostic struct {
	// File is the absolute path of the source file, or empty when the
	// diagnostic is not tied to a file (e.g. a configuration problem).
	File string
	// Start is the 0-based character offset of the diagnostic in File.
	// Meaningless when File is empty.
	Start int
	// MessageChain holds the primary message first, followed by its chain of
	// causes.
	MessageChain []string
}

// Diagnostic is a translated, build-tool-agnostic diagnostic record.
// It is a closed set: PositionedDiagnostic or BareDiagnostic.
type Diagnostic interface {
	// Message returns the flattened message text.
	Message() string
	// Format renders the diagnostic for build-tool output.
	Format() string
}

// PositionedDiagnostic is a diagnostic tied to a position in a source file.
type PositionedDiagnostic struct {
	// File is the source path, rewritten relative to the build context root.
	File string
	// Line is 1-based.
	Line int
	// Column is 1-based.
	Column int
	// Text is the flattened message.
	Text string
}

// Message returns the flattened message text.
func (d PositionedDiagnostic) Message() string { return d.Text }

// Format renders the diagnostic as "(line,col): message".
func (d PositionedDiagnostic) Format() string {
	return fmt.Sprintf("(%d,%d): %s", d.Line, d.Column, d.Text)
}

// BareDiagnostic is a diagnostic with no source position.
type BareDiagnostic struct {
	// Text is the flattened message.
	Text string
}

// Message returns the flattened message text.
func (d BareDiagnostic) Message() string { return d.Text }

// Format renders the bare message unchanged.
func (d BareDiagnostic) Format() string { return d.Text }
