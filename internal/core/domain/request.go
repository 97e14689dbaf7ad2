package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// CompileRequest is one per-file compile request from the host build tool.
type CompileRequest struct {
	// ResourcePath is the absolute path of the build target.
	ResourcePath string
	// Content is the target's text as handed over by the build tool.
	Content string
	// SourceMapRequested forces source-map enablement for the session.
	SourceMapRequested bool
	// BuildContext is the build context root directory.
	BuildContext string
	// Query carries build-tool query parameters (option overrides).
	Query string
}

// SourceMap is the assembled source map for an emitted file.
type SourceMap struct {
	Version        int      `json:"version"`
	File           string   `json:"file"`
	SourceRoot     string   `json:"sourceRoot,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// CompileResult is the outcome of a successful compile request.
type CompileResult struct {
	// Code is the emitted output text.
	Code string
	// SourceMap is present when source maps were requested.
	SourceMap *SourceMap
	// Declaration is the emitted declaration text, when configured.
	Declaration string
}

// EmitOutput is one output file produced by the compiler service.
type EmitOutput struct {
	// Name is the output file name.
	Name string
	// Text is the output content.
	Text string
}

// EmitResult is the compiler service's answer to an emit request.
type EmitResult struct {
	// Skipped is true when the compiler declined to emit: the file is
	// unknown to the program or unparsable.
	Skipped bool
	// Outputs are the produced files (code, map, declaration).
	Outputs []EmitOutput
}

// SessionKey derives the session cache key from the build context path and
// the build-tool query parameters, so distinct configurations never share
// state. The readable context prefix keeps keys debuggable; the hash keeps
// query variants apart.
func SessionKey(contextPath, query string) string {
	h := xxhash.New()
	_, _ = h.WriteString(contextPath)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(query)
	return fmt.Sprintf("%s|%016x", contextPath, h.Sum64())
}
