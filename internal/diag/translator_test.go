package diag_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/inch/internal/core/domain"
	"go.trai.ch/inch/internal/diag"
)

// lineIndexMapper maps offsets to positions over fixed file contents, the way
// the compiler's own line index does.
type lineIndexMapper struct {
	files map[string]string
}

func (m lineIndexMapper) PositionFor(file string, offset int) (int, int) {
	text := m.files[file]
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

func newTranslator() *diag.Translator {
	mapper := lineIndexMapper{files: map[string]string{
		"/proj/src/a.ts": "let x = 1\nlet y = 2\nlet z =\n",
	}}
	return diag.NewTranslator(mapper, "/proj")
}

// render mirrors how the host build tool prints a diagnostic list.
func render(ds []domain.Diagnostic) []byte {
	var b strings.Builder
	for _, d := range ds {
		if pd, ok := d.(domain.PositionedDiagnostic); ok {
			fmt.Fprintf(&b, "%s %s\n", pd.File, pd.Format())
			continue
		}
		fmt.Fprintf(&b, "%s\n", d.Format())
	}
	return []byte(b.String())
}

func TestTranslator_Positioned(t *testing.T) {
	tr := newTranslator()

	d := tr.Translate(domain.CompilerDiagnostic{
		File:         "/proj/src/a.ts",
		Start:        26,
		MessageChain: []string{"Expression expected."},
	})

	pd, ok := d.(domain.PositionedDiagnostic)
	require.True(t, ok)
	assert.Equal(t, "src/a.ts", pd.File)
	assert.Equal(t, 3, pd.Line)
	assert.Equal(t, 7, pd.Column)
	assert.Equal(t, "(3,7): Expression expected.", pd.Format())

	g := goldie.New(t)
	g.Assert(t, "translate_positioned", render([]domain.Diagnostic{d}))
}

func TestTranslator_Bare(t *testing.T) {
	tr := newTranslator()

	d := tr.Translate(domain.CompilerDiagnostic{
		MessageChain: []string{"Cannot read project configuration."},
	})

	_, ok := d.(domain.BareDiagnostic)
	require.True(t, ok)
	assert.Equal(t, "Cannot read project configuration.", d.Format())

	g := goldie.New(t)
	g.Assert(t, "translate_bare", render([]domain.Diagnostic{d}))
}

func TestTranslator_FlattensMessageChain(t *testing.T) {
	tr := newTranslator()

	d := tr.Translate(domain.CompilerDiagnostic{
		File:  "/proj/src/a.ts",
		Start: 0,
		MessageChain: []string{
			"Cannot find module './missing'.",
			"Module resolution considered './missing.ts' and './missing.d.ts'.",
		},
	})

	assert.Equal(t,
		"Cannot find module './missing'.\nModule resolution considered './missing.ts' and './missing.d.ts'.",
		d.Message())

	g := goldie.New(t)
	g.Assert(t, "translate_chain", render([]domain.Diagnostic{d}))
}

func TestTranslator_PathOutsideRootStaysAbsolute(t *testing.T) {
	tr := newTranslator()

	d := tr.Translate(domain.CompilerDiagnostic{
		File:         "/other/lib.d.ts",
		Start:        0,
		MessageChain: []string{"Duplicate identifier 'v'."},
	})

	pd, ok := d.(domain.PositionedDiagnostic)
	require.True(t, ok)
	assert.Equal(t, "/other/lib.d.ts", pd.File)
}

func TestTranslator_TranslateAll(t *testing.T) {
	tr := newTranslator()

	assert.Nil(t, tr.TranslateAll(nil))

	out := tr.TranslateAll([]domain.CompilerDiagnostic{
		{File: "/proj/src/a.ts", Start: 0, MessageChain: []string{"first"}},
		{MessageChain: []string{"second"}},
	})
	require.Len(t, out, 2)
	assert.IsType(t, domain.PositionedDiagnostic{}, out[0])
	assert.IsType(t, domain.BareDiagnostic{}, out[1])
}
