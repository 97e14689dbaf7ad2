// Package domain contains the core types of the incremental compilation host.
package domain

import (
	"strconv"
	"strings"
)

// DeclarationSuffix is the two-part filename suffix identifying declaration
// files: files that provide type information only and are never emitted.
const DeclarationSuffix = ".d.ts"

// FileRecord is a versioned text snapshot of one file as the compiler
// currently sees it. A record is created at version 0 on first sight and the
// version increments on every text mutation; it never decrements.
type FileRecord struct {
	// Path is the absolute path of the file.
	Path string
	// Version counts text mutations since the record was created.
	Version int
	// Text is the current snapshot content.
	Text string
}

// Stamp returns the version as the opaque stamp string handed to the
// compiler. Stamp equality across two reads implies text equality.
func (r *FileRecord) Stamp() string {
	return strconv.Itoa(r.Version)
}

// IsDeclarationPath reports whether path names a declaration file.
func IsDeclarationPath(path string) bool {
	return strings.HasSuffix(path, DeclarationSuffix)
}
