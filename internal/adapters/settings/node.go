package settings

import (
	"context"

	"github.com/Josmithr/rushstack/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the settings loader Graft node.
	NodeID graft.ID = "adapter.settings_loader"

	// VersionsNodeID is the unique identifier for the versions source Graft node.
	VersionsNodeID graft.ID = "adapter.versions_source"
)

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.VersionsSource]{
		ID:        VersionsNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.VersionsSource, error) {
			return NewLoader(), nil
		},
	})
}
