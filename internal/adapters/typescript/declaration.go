package typescript

import (
	"regexp"
	"strings"
)

var exportPattern = regexp.MustCompile(
	`(?m)^\s*export\s+(?:declare\s+)?(const|let|var|function|class)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

// declarationFor derives a declaration file from source text. Exported
// bindings are re-declared with erased shapes, which is enough for a
// dependent module to resolve the names it imports.
func declarationFor(source, newline string) string {
	var lines []string
	for _, m := range exportPattern.FindAllStringSubmatch(source, -1) {
		kind, name := m[1], m[2]
		switch kind {
		case "function":
			lines = append(lines, "export declare function "+name+"(...args: any[]): any;")
		case "class":
			lines = append(lines, "export declare class "+name+" {}")
		default:
			lines = append(lines, "export declare "+kind+" "+name+": any;")
		}
	}
	if len(lines) == 0 {
		return "export {};" + newline
	}
	return strings.Join(lines, newline) + newline
}
