// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Josmithr/rushstack/internal/adapters/logger"
	_ "github.com/Josmithr/rushstack/internal/adapters/settings"
	_ "github.com/Josmithr/rushstack/internal/adapters/shrinkwrap"
	_ "github.com/Josmithr/rushstack/internal/adapters/terminal"
	_ "github.com/Josmithr/rushstack/internal/adapters/tips"
	// Register the app node.
	_ "github.com/Josmithr/rushstack/internal/app"
)
