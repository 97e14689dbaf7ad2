package app

import (
	"go.trai.ch/inch/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Notifier ports.Notifier
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(a *App, log ports.Logger, notifier ports.Notifier) *Components {
	return &Components{
		App:      a,
		Logger:   log,
		Notifier: notifier,
	}
}
