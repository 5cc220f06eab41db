package shrinkwrap

import (
	"context"

	"github.com/Josmithr/rushstack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the shrinkwrap source Graft node.
const NodeID graft.ID = "adapter.shrinkwrap_source"

func init() {
	graft.Register(graft.Node[ports.ShrinkwrapSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ShrinkwrapSource, error) {
			return NewSource(), nil
		},
	})
}
