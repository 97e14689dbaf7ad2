// Package config provides the project-configuration loader for inch.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/inch/internal/core/domain"
	"go.trai.ch/inch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file discovered by walking up
// from the build context directory.
const ConfigFileName = "tsconfig.json"

// Loader implements ports.ConfigLoader. Merging follows a fixed precedence:
// built-in defaults < project configuration file < query overrides. Forced
// fields are applied by the caller from the active request.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Resolve discovers and merges the configuration for contextDir. On error the
// returned config is still usable: built-in defaults with every successfully
// parsed layer applied, so a malformed configuration degrades to a warning
// instead of aborting the session.
func (l *Loader) Resolve(contextDir, query string) (domain.ProjectConfig, error) {
	pc := domain.DefaultProjectConfig()

	configPath, err := l.findConfiguration(contextDir)
	if err != nil {
		pc, queryErr := l.applyQuery(pc, query)
		if queryErr != nil {
			return pc, queryErr
		}
		return pc, err
	}

	file, err := readConfigFile(configPath)
	if err != nil {
		pc, _ = l.applyQuery(pc, query)
		return pc, err
	}

	pc.ConfigPath = configPath
	pc.Options = pc.Options.Apply(file.CompilerOptions.Overrides())
	pc.EntryFiles = resolveEntryFiles(configPath, file.Files)

	return l.applyQuery(pc, query)
}

// applyQuery lays query overrides on top; they outrank the project file.
func (l *Loader) applyQuery(pc domain.ProjectConfig, query string) (domain.ProjectConfig, error) {
	overrides, err := parseQuery(query)
	if err != nil {
		return pc, err
	}
	pc.Options = pc.Options.Apply(overrides)
	return pc, nil
}

func (l *Loader) findConfiguration(contextDir string) (string, error) {
	currentDir := contextDir
	for {
		candidate := filepath.Join(currentDir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "context", contextDir)
}

func readConfigFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return &file, nil
}

// resolveEntryFiles makes configured entry files absolute relative to the
// configuration file's directory.
func resolveEntryFiles(configPath string, files []string) []string {
	baseDir := filepath.Dir(configPath)
	resolved := make([]string, 0, len(files))
	for _, f := range files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(baseDir, f)
		}
		resolved = append(resolved, f)
	}
	return resolved
}

// parseQuery converts build-tool query parameters into option overrides.
// Boolean keys with no value are treated as true ("?sourceMap").
func parseQuery(query string) (domain.OptionOverrides, error) {
	var overrides domain.OptionOverrides
	query = strings.TrimPrefix(query, "?")
	if query == "" {
		return overrides, nil
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return overrides, zerr.With(zerr.Wrap(err, domain.ErrQueryParseFailed.Error()), "query", query)
	}

	for key := range values {
		value := values.Get(key)
		switch key {
		case "target":
			overrides.Target = &value
		case "module":
			overrides.Module = &value
		case "lib":
			overrides.Lib = &value
		case "outDir":
			overrides.OutDir = &value
		case "newLine":
			overrides.NewLine = newlineSequence(value)
		case "sourceMap", "declaration", "strict":
			b, err := parseBool(value)
			if err != nil {
				return overrides, zerr.With(zerr.Wrap(err, domain.ErrQueryParseFailed.Error()), "key", key)
			}
			switch key {
			case "sourceMap":
				overrides.SourceMap = &b
			case "declaration":
				overrides.Declaration = &b
			case "strict":
				overrides.Strict = &b
			}
		}
	}
	return overrides, nil
}

func parseBool(value string) (bool, error) {
	if value == "" {
		return true, nil
	}
	return strconv.ParseBool(value)
}
