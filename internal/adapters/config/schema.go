package config

import "go.trai.ch/inch/internal/core/domain"

// ConfigFile mirrors the on-disk project configuration. YAML is a superset
// of JSON, so plain JSON configuration files parse unchanged.
type ConfigFile struct {
	CompilerOptions OptionsDTO `yaml:"compilerOptions"`
	Files           []string   `yaml:"files"`
}

// OptionsDTO is the sparse compilerOptions block. Nil fields are "not set"
// and leave the lower precedence layer untouched.
type OptionsDTO struct {
	Target      *string `yaml:"target"`
	Module      *string `yaml:"module"`
	SourceMap   *bool   `yaml:"sourceMap"`
	Declaration *bool   `yaml:"declaration"`
	Strict      *bool   `yaml:"strict"`
	NewLine     *string `yaml:"newLine"`
	Lib         *string `yaml:"lib"`
	OutDir      *string `yaml:"outDir"`
}

// Overrides converts the DTO into a domain patch. The newLine keyword
// ("lf"/"crlf") is translated to the concrete sequence.
func (o OptionsDTO) Overrides() domain.OptionOverrides {
	overrides := domain.OptionOverrides{
		Target:      o.Target,
		Module:      o.Module,
		SourceMap:   o.SourceMap,
		Declaration: o.Declaration,
		Strict:      o.Strict,
		Lib:         o.Lib,
		OutDir:      o.OutDir,
	}
	if o.NewLine != nil {
		overrides.NewLine = newlineSequence(*o.NewLine)
	}
	return overrides
}

func newlineSequence(keyword string) *string {
	var seq string
	switch keyword {
	case "crlf", "CRLF":
		seq = "\r\n"
	default:
		seq = "\n"
	}
	return &seq
}
