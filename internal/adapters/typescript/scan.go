package typescript

import (
	"fmt"
	"regexp"

	"go.trai.ch/inch/internal/core/domain"
)

// ImportRef is a module specifier found in source text together with the
// byte offset of its opening quote.
type ImportRef struct {
	Spec   string
	Offset int
}

var importPattern = regexp.MustCompile(
	`(?m)^\s*(?:import|export)\s+(?:[^'"\n]*?\sfrom\s+)?["']([^"'\n]+)["']` +
		`|require\(\s*["']([^"'\n]+)["']\s*\)`)

// ScanImports extracts module specifiers from import, re-export, and
// require forms.
func ScanImports(text string) []ImportRef {
	var refs []ImportRef
	for _, m := range importPattern.FindAllStringSubmatchIndex(text, -1) {
		for _, group := range []int{1, 2} {
			start, end := m[2*group], m[2*group+1]
			if start < 0 {
				continue
			}
			refs = append(refs, ImportRef{
				Spec:   text[start:end],
				Offset: start,
			})
		}
	}
	return refs
}

// CheckDelimiters verifies that parentheses, braces, and brackets in text
// balance, ignoring delimiters inside strings and comments. It returns the
// first mismatch found.
func CheckDelimiters(file, text string) (domain.CompilerDiagnostic, bool) {
	src := []byte(text)
	type open struct {
		char   byte
		offset int
	}
	var stack []open
	closerOf := map[byte]byte{'(': ')', '{': '}', '[': ']'}

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"' || c == '\'' || c == '`':
			i = skipString(src, i)
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			i = skipLineComment(src, i)
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipBlockComment(src, i)
			continue
		case c == '(' || c == '{' || c == '[':
			stack = append(stack, open{char: c, offset: i})
		case c == ')' || c == '}' || c == ']':
			if len(stack) == 0 {
				return domain.CompilerDiagnostic{
					File:         file,
					Start:        i,
					MessageChain: []string{"Declaration or statement expected."},
				}, true
			}
			top := stack[len(stack)-1]
			if closerOf[top.char] != c {
				return domain.CompilerDiagnostic{
					File:         file,
					Start:        i,
					MessageChain: []string{fmt.Sprintf("'%c' expected.", closerOf[top.char])},
				}, true
			}
			stack = stack[:len(stack)-1]
		}
		i++
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return domain.CompilerDiagnostic{
			File:         file,
			Start:        len(src),
			MessageChain: []string{fmt.Sprintf("'%c' expected.", closerOf[top.char])},
		}, true
	}
	return domain.CompilerDiagnostic{}, false
}
