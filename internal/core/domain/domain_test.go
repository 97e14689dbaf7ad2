package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/inch/internal/core/domain"
)

func TestFileRecord_Stamp(t *testing.T) {
	rec := &domain.FileRecord{Path: "/p/a.ts", Version: 0, Text: "let x=1"}
	assert.Equal(t, "0", rec.Stamp())

	rec.Version = 41
	assert.Equal(t, "41", rec.Stamp())
}

func TestIsDeclarationPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "declaration file", path: "/p/b.d.ts", want: true},
		{name: "plain source file", path: "/p/a.ts", want: false},
		{name: "dotted name without suffix", path: "/p/a.d.tsx", want: false},
		{name: "nested declaration", path: "/p/node_modules/lib/index.d.ts", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsDeclarationPath(tt.path))
		})
	}
}

func TestSessionKey(t *testing.T) {
	t.Run("stable for identical inputs", func(t *testing.T) {
		a := domain.SessionKey("/proj", "?sourceMap=true")
		b := domain.SessionKey("/proj", "?sourceMap=true")
		assert.Equal(t, a, b)
	})

	t.Run("differs per query", func(t *testing.T) {
		a := domain.SessionKey("/proj", "?sourceMap=true")
		b := domain.SessionKey("/proj", "?sourceMap=false")
		assert.NotEqual(t, a, b)
	})

	t.Run("differs per context", func(t *testing.T) {
		a := domain.SessionKey("/proj-a", "")
		b := domain.SessionKey("/proj-b", "")
		assert.NotEqual(t, a, b)
	})
}

func TestCompilerOptions_Apply(t *testing.T) {
	base := domain.DefaultOptions()

	t.Run("nil fields leave values untouched", func(t *testing.T) {
		merged := base.Apply(domain.OptionOverrides{})
		assert.Equal(t, base, merged)
	})

	t.Run("set fields override", func(t *testing.T) {
		target := "es2017"
		sourceMap := true
		merged := base.Apply(domain.OptionOverrides{Target: &target, SourceMap: &sourceMap})
		assert.Equal(t, "es2017", merged.Target)
		assert.True(t, merged.SourceMap)
		// Untouched fields keep their defaults.
		assert.Equal(t, base.Module, merged.Module)
		assert.Equal(t, base.Lib, merged.Lib)
	})

	t.Run("later layer wins", func(t *testing.T) {
		fileTarget := "es6"
		queryTarget := "es2020"
		merged := base.
			Apply(domain.OptionOverrides{Target: &fileTarget}).
			Apply(domain.OptionOverrides{Target: &queryTarget})
		assert.Equal(t, "es2020", merged.Target)
	})
}

func TestDiagnostic_Format(t *testing.T) {
	t.Run("positioned", func(t *testing.T) {
		d := domain.PositionedDiagnostic{File: "src/a.ts", Line: 3, Column: 7, Text: "';' expected."}
		assert.Equal(t, "(3,7): ';' expected.", d.Format())
		assert.Equal(t, "';' expected.", d.Message())
	})

	t.Run("bare", func(t *testing.T) {
		d := domain.BareDiagnostic{Text: "Cannot read project configuration."}
		assert.Equal(t, "Cannot read project configuration.", d.Format())
		assert.Equal(t, d.Format(), d.Message())
	})
}
