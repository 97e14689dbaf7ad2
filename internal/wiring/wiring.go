// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/inch/internal/adapters/config"
	_ "go.trai.ch/inch/internal/adapters/logger"
	_ "go.trai.ch/inch/internal/adapters/notify"
	_ "go.trai.ch/inch/internal/adapters/typescript"
	_ "go.trai.ch/inch/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/inch/internal/app"
	_ "go.trai.ch/inch/internal/engine/session"
)
