package session

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/inch/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/inch/internal/core/ports"
)

// NodeID is the unique identifier for the session registry Graft node.
const NodeID graft.ID = "engine.session_registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(NewMapStore(), log), nil
		},
	})
}
