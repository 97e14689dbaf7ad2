package typescript_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/inch/internal/adapters/typescript"
)

func TestTranspile_ParameterAnnotations(t *testing.T) {
	out := typescript.Transpile("function add(a: number, b: number) { return a + b; }")
	assert.Equal(t, "function add(a, b) { return a + b; }", out)
}

func TestTranspile_ReturnType(t *testing.T) {
	out := typescript.Transpile("function id(x: string): string { return x; }")
	assert.Equal(t, "function id(x){ return x; }", out)
}

func TestTranspile_VariableAnnotation(t *testing.T) {
	out := typescript.Transpile("const x: number = 1;")
	assert.Equal(t, "const x= 1;", out)
}

func TestTranspile_FunctionTypedVariable(t *testing.T) {
	out := typescript.Transpile("const double: (n: number) => number = (n) => n * 2;")
	assert.Equal(t, "const double= (n) => n * 2;", out)
}

func TestTranspile_OptionalParameter(t *testing.T) {
	out := typescript.Transpile("function greet(name?: string) { return name; }")
	assert.Equal(t, "function greet(name) { return name; }", out)
}

func TestTranspile_ObjectLiteralsSurvive(t *testing.T) {
	src := "const p = { x: 1, y: 2 };"
	assert.Equal(t, src, typescript.Transpile(src))
}

func TestTranspile_TernarySurvives(t *testing.T) {
	src := `const label = ok ? "yes" : "no";`
	assert.Equal(t, src, typescript.Transpile(src))
}

func TestTranspile_CaseLabelsSurvive(t *testing.T) {
	src := "switch (x) { case 1: break; default: break; }"
	assert.Equal(t, src, typescript.Transpile(src))
}

func TestTranspile_InterfaceBlanked(t *testing.T) {
	src := "interface Point {\n  x: number;\n  y: number;\n}\nconst p = { x: 1 };\n"
	out := typescript.Transpile(src)

	assert.Equal(t, strings.Count(src, "\n"), strings.Count(out, "\n"))
	lines := strings.Split(out, "\n")
	for _, line := range lines[:4] {
		assert.Empty(t, strings.TrimSpace(line))
	}
	assert.Equal(t, "const p = { x: 1 };", lines[4])
}

func TestTranspile_ExportedInterfaceBlanked(t *testing.T) {
	out := typescript.Transpile("export interface Shape { area: number }\nexport const x = 1;\n")
	lines := strings.Split(out, "\n")
	assert.Empty(t, strings.TrimSpace(lines[0]))
	assert.Equal(t, "export const x = 1;", lines[1])
}

func TestTranspile_TypeAliasBlanked(t *testing.T) {
	out := typescript.Transpile("type ID = string;\nconst id = 1;\n")
	lines := strings.Split(out, "\n")
	assert.Empty(t, strings.TrimSpace(lines[0]))
	assert.Equal(t, "const id = 1;", lines[1])
}

func TestTranspile_TypeOnlyImportBlanked(t *testing.T) {
	src := "import type { Foo } from \"./foo\";\nimport { bar } from \"./bar\";\n"
	out := typescript.Transpile(src)
	lines := strings.Split(out, "\n")
	assert.Empty(t, strings.TrimSpace(lines[0]))
	assert.Equal(t, "import { bar } from \"./bar\";", lines[1])
}

func TestTranspile_StringsUntouched(t *testing.T) {
	src := "const s = \"a: string\";\nconst u = 'b: number';\n"
	assert.Equal(t, src, typescript.Transpile(src))
}

func TestTranspile_CommentsUntouched(t *testing.T) {
	src := "// note: keep this colon\nconst a = 1; /* b: number */\n"
	assert.Equal(t, src, typescript.Transpile(src))
}

func TestTranspile_PreservesLineCount(t *testing.T) {
	src := "interface A {\n  v: string;\n}\n\nexport function f(\n  a: number,\n  b?: string\n): void {\n  return;\n}\n"
	out := typescript.Transpile(src)
	assert.Equal(t, strings.Count(src, "\n"), strings.Count(out, "\n"))
}
