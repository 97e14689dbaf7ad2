package ports

import "go.trai.ch/inch/internal/core/domain"

// ConfigLoader resolves the project configuration for a build context.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Resolve discovers the on-disk project configuration starting at
	// contextDir and merges it with query overrides on top of built-in
	// defaults. Forced fields are applied later by the caller from the
	// active request.
	Resolve(contextDir, query string) (domain.ProjectConfig, error)
}
