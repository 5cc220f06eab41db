// Package ports defines the interfaces between the rush core and its adapters.
package ports

//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks

// SettingsLoader loads the resolved rush settings for a repository.
type SettingsLoader interface {
	// Load reads the settings file under the given repository root.
	Load(rootDir string) (Settings, error)
}

// Settings exposes the resolved configuration a refresh reconciles against.
type Settings interface {
	// TrackShrinkwrap reports whether lockfile-drift tracking is enabled.
	TrackShrinkwrap() bool

	// OmitImporters reports whether importer entries are excluded from the
	// shrinkwrap hash.
	OmitImporters() bool

	// WorkspaceEnabled reports whether preferred-versions tracking is enabled.
	WorkspaceEnabled() bool

	// Variants returns the declared variant names, without the default variant.
	Variants() []string

	// HasVariant reports whether the named variant is declared. The empty
	// name is the default variant and is always known.
	HasVariant(name string) bool
}
