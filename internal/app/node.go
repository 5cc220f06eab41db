package app

import (
	"context"

	"github.com/Josmithr/rushstack/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"github.com/Josmithr/rushstack/internal/adapters/settings"   //nolint:depguard // Wired in app layer
	"github.com/Josmithr/rushstack/internal/adapters/shrinkwrap" //nolint:depguard // Wired in app layer
	"github.com/Josmithr/rushstack/internal/adapters/terminal"   //nolint:depguard // Wired in app layer
	"github.com/Josmithr/rushstack/internal/adapters/tips"       //nolint:depguard // Wired in app layer
	"github.com/Josmithr/rushstack/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			settings.NodeID,
			settings.VersionsNodeID,
			shrinkwrap.NodeID,
			tips.NodeID,
			terminal.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			settingsLoader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}

			shrinkwraps, err := graft.Dep[ports.ShrinkwrapSource](ctx)
			if err != nil {
				return nil, err
			}

			versions, err := graft.Dep[ports.VersionsSource](ctx)
			if err != nil {
				return nil, err
			}

			presenter, err := graft.Dep[ports.TipPresenter](ctx)
			if err != nil {
				return nil, err
			}

			term, err := graft.Dep[ports.Terminal](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(settingsLoader, shrinkwraps, versions, presenter, term, log), nil
		},
	})
}
