// Package typescript provides a small reference compiler service for the
// host: a line-preserving type-annotation stripper with program-wide
// delimiter and import-resolution checks. It is deliberately not a type
// checker; it exists so the host has a concrete service to drive and tests
// have observable emission. Generic parameter lists and enums are beyond it.
package typescript

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/inch/internal/core/domain"
	"go.trai.ch/inch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory constructs a Service bound to a host.
var Factory ports.CompilerFactory = func(host ports.ServiceHost) ports.CompilerService {
	return New(host)
}

// Service implements ports.CompilerService over a ServiceHost. Emit results
// are memoized per path against the host's version stamp and settings, so an
// unchanged stamp serves the cached output without re-transpiling.
type Service struct {
	host      ports.ServiceHost
	emitCache map[string]emitEntry
}

type emitEntry struct {
	sum    uint64
	result domain.EmitResult
}

// New creates a Service over the given host.
func New(host ports.ServiceHost) *Service {
	return &Service{
		host:      host,
		emitCache: make(map[string]emitEntry),
	}
}

var _ ports.CompilerService = (*Service)(nil)

// EmitOutput produces compiled output for path. Unknown or non-script files
// are reported as skipped, never as empty output.
func (s *Service) EmitOutput(path string) (domain.EmitResult, error) {
	if !isScriptPath(path) || domain.IsDeclarationPath(path) {
		return domain.EmitResult{Skipped: true}, nil
	}

	text, ok := s.host.ScriptSnapshotFor(path, path)
	if !ok {
		return domain.EmitResult{Skipped: true}, nil
	}

	opts := s.host.CompilationSettings()
	sum := emitSum(text == "", s.host.ScriptVersion(path), path, opts)
	if entry, ok := s.emitCache[path]; ok && entry.sum == sum {
		return entry.result, nil
	}

	// Touch imports through the host so unresolved dependencies are pulled
	// in on demand and declaration files get their invalidation channel.
	s.resolveImports(path, text)

	code := Transpile(text)
	outName := outputName(path, opts)

	outputs := []domain.EmitOutput{{Name: outName, Text: code}}
	if opts.SourceMap {
		mapText, err := renderSourceMap(outName, path, code)
		if err != nil {
			return domain.EmitResult{}, zerr.With(err, "path", path)
		}
		outputs = append(outputs, domain.EmitOutput{Name: outName + ".map", Text: mapText})
	}
	if opts.Declaration {
		declName := strings.TrimSuffix(outName, ".js") + domain.DeclarationSuffix
		outputs = append(outputs, domain.EmitOutput{
			Name: declName,
			Text: declarationFor(text, newlineOf(opts)),
		})
	}

	result := domain.EmitResult{Outputs: outputs}
	s.emitCache[path] = emitEntry{sum: sum, result: result}
	return result, nil
}

// SyntacticDiagnostics reports delimiter-balance problems for every script
// file in the program.
func (s *Service) SyntacticDiagnostics() []domain.CompilerDiagnostic {
	var out []domain.CompilerDiagnostic
	for _, file := range s.host.ScriptFileNames() {
		if !isScriptPath(file) {
			continue
		}
		text, ok := s.host.ScriptSnapshotFor(file, file)
		if !ok {
			continue
		}
		if d, bad := CheckDelimiters(file, text); bad {
			out = append(out, d)
		}
	}
	return out
}

// SemanticDiagnostics reports relative imports that resolve to nothing. A
// missing declaration file is best-effort type information, so this never
// blocks emission.
func (s *Service) SemanticDiagnostics() []domain.CompilerDiagnostic {
	var out []domain.CompilerDiagnostic
	for _, file := range s.host.ScriptFileNames() {
		if !isScriptPath(file) || domain.IsDeclarationPath(file) {
			continue
		}
		text, ok := s.host.ScriptSnapshotFor(file, file)
		if !ok {
			continue
		}
		for _, ref := range ScanImports(text) {
			if !strings.HasPrefix(ref.Spec, ".") {
				continue
			}
			if s.resolveOne(file, ref.Spec) == "" {
				out = append(out, domain.CompilerDiagnostic{
					File:  file,
					Start: ref.Offset,
					MessageChain: []string{
						"Cannot find module '" + ref.Spec + "'.",
						"Module resolution considered '" + ref.Spec + ".ts' and '" + ref.Spec + ".d.ts'.",
					},
				})
			}
		}
	}
	return out
}

// PositionFor converts a 0-based offset in file to a 1-based line and column
// using the file's current snapshot.
func (s *Service) PositionFor(file string, offset int) (int, int) {
	text, ok := s.host.ScriptSnapshotFor(file, file)
	if !ok {
		return 1, 1
	}
	line, col := 1, 1
	for i, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// resolveImports pulls every relative import through the host on behalf of
// target.
func (s *Service) resolveImports(target, text string) {
	for _, ref := range ScanImports(text) {
		if strings.HasPrefix(ref.Spec, ".") {
			s.resolveOne(target, ref.Spec)
		}
	}
}

// resolveOne returns the first candidate path for spec that yields a
// snapshot, or empty when none does.
func (s *Service) resolveOne(target, spec string) string {
	base := filepath.Join(filepath.Dir(target), spec)
	for _, candidate := range candidatePaths(base) {
		if _, ok := s.host.ScriptSnapshotFor(target, candidate); ok {
			return candidate
		}
	}
	return ""
}

func candidatePaths(base string) []string {
	if strings.HasSuffix(base, ".ts") || strings.HasSuffix(base, ".tsx") {
		return []string{base}
	}
	return []string{
		base + ".ts",
		base + domain.DeclarationSuffix,
		filepath.Join(base, "index.ts"),
		filepath.Join(base, "index"+domain.DeclarationSuffix),
	}
}

func isScriptPath(path string) bool {
	return strings.HasSuffix(path, ".ts") || strings.HasSuffix(path, ".tsx")
}

func outputName(path string, opts domain.CompilerOptions) string {
	name := strings.TrimSuffix(strings.TrimSuffix(path, ".tsx"), ".ts") + ".js"
	if opts.OutDir != "" {
		name = filepath.Join(opts.OutDir, filepath.Base(name))
	}
	return name
}

func newlineOf(opts domain.CompilerOptions) string {
	if opts.NewLine == "" {
		return "\n"
	}
	return opts.NewLine
}

func emitSum(empty bool, stamp, path string, opts domain.CompilerOptions) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(path)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(stamp)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(opts.Target)
	_, _ = h.WriteString(opts.Module)
	_, _ = h.WriteString(opts.NewLine)
	_, _ = h.WriteString(opts.OutDir)
	if opts.SourceMap {
		_, _ = h.Write([]byte{1})
	}
	if opts.Declaration {
		_, _ = h.Write([]byte{2})
	}
	if empty {
		_, _ = h.Write([]byte{3})
	}
	return h.Sum64()
}

// renderSourceMap produces an identity line map: the stripper preserves line
// structure, so line N of output maps to line N of input.
func renderSourceMap(outName, sourcePath, code string) (string, error) {
	lines := strings.Count(code, "\n") + 1
	var mappings strings.Builder
	mappings.WriteString("AAAA")
	for range lines - 1 {
		mappings.WriteString(";AACA")
	}

	m := domain.SourceMap{
		Version:  3,
		File:     filepath.Base(outName),
		Sources:  []string{sourcePath},
		Names:    []string{},
		Mappings: mappings.String(),
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrSourceMapAssembly.Error())
	}
	return string(data), nil
}
