package tips

import (
	"context"

	"github.com/Josmithr/rushstack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the tip presenter Graft node.
const NodeID graft.ID = "adapter.tip_presenter"

func init() {
	graft.Register(graft.Node[ports.TipPresenter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TipPresenter, error) {
			return NewFormatter(), nil
		},
	})
}
