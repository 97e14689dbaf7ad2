// Package diag translates the compiler's positional diagnostics into
// build-tool-agnostic records.
package diag

import (
	"path/filepath"
	"strings"

	"go.trai.ch/inch/internal/core/domain"
)

// PositionMapper converts a 0-based character offset in a file to a 1-based
// line and column. Line indexing is delegated to the compiler, which owns the
// file's line map.
type PositionMapper interface {
	PositionFor(file string, offset int) (line, col int)
}

// Translator converts compiler diagnostics into domain records. File paths
// are rewritten relative to the build context root so output is reproducible
// across machines.
type Translator struct {
	mapper      PositionMapper
	contextRoot string
}

// NewTranslator creates a translator rooted at the build context directory.
func NewTranslator(mapper PositionMapper, contextRoot string) *Translator {
	return &Translator{mapper: mapper, contextRoot: contextRoot}
}

// Translate converts one diagnostic. A diagnostic carrying a source file
// becomes a positioned record with its offset mapped to line and column;
// anything else becomes a bare record. Nested message chains are flattened
// into one string joined by newlines.
func (t *Translator) Translate(d domain.CompilerDiagnostic) domain.Diagnostic {
	msg := strings.Join(d.MessageChain, "\n")

	if d.File == "" {
		return domain.BareDiagnostic{Text: msg}
	}

	line, col := t.mapper.PositionFor(d.File, d.Start)
	return domain.PositionedDiagnostic{
		File:   t.relativize(d.File),
		Line:   line,
		Column: col,
		Text:   msg,
	}
}

// TranslateAll converts a batch of diagnostics in order.
func (t *Translator) TranslateAll(ds []domain.CompilerDiagnostic) []domain.Diagnostic {
	if len(ds) == 0 {
		return nil
	}
	out := make([]domain.Diagnostic, 0, len(ds))
	for _, d := range ds {
		out = append(out, t.Translate(d))
	}
	return out
}

func (t *Translator) relativize(path string) string {
	rel, err := filepath.Rel(t.contextRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
