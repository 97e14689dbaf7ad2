package typescript

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/inch/internal/core/ports"
)

const NodeID graft.ID = "adapter.compiler_factory"

func init() {
	graft.Register(graft.Node[ports.CompilerFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.CompilerFactory, error) {
			return Factory, nil
		},
	})
}
