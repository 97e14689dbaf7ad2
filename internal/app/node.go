package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/inch/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/inch/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/inch/internal/adapters/notify"     //nolint:depguard // Wired in app layer
	"go.trai.ch/inch/internal/adapters/typescript" //nolint:depguard // Wired in app layer
	"go.trai.ch/inch/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/inch/internal/core/ports"
	"go.trai.ch/inch/internal/engine/session"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			session.NodeID,
			config.NodeID,
			typescript.NodeID,
			notify.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			notify.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	sessions, err := graft.Dep[*session.Registry](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.CompilerFactory](ctx)
	if err != nil {
		return nil, err
	}

	notifier, err := graft.Dep[ports.Notifier](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(sessions, loader, factory, notifier, watch, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	notifier, err := graft.Dep[ports.Notifier](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(a, log, notifier), nil
}
