package terminal

import (
	"context"

	"github.com/Josmithr/rushstack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the terminal sink Graft node.
const NodeID graft.ID = "adapter.terminal"

func init() {
	graft.Register(graft.Node[ports.Terminal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Terminal, error) {
			return New(nil), nil
		},
	})
}
