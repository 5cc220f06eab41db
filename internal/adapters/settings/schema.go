package settings

// rushFile represents the structure of the rush.yaml settings file.
type rushFile struct {
	Version   string       `yaml:"version"`
	Policies  policiesDTO  `yaml:"policies"`
	Workspace workspaceDTO `yaml:"workspace"`
	Variants  []string     `yaml:"variants"`
}

// policiesDTO holds the repository policies affecting repo state tracking.
type policiesDTO struct {
	PreventManualShrinkwrapChanges  bool `yaml:"preventManualShrinkwrapChanges"`
	OmitImportersFromShrinkwrapHash bool `yaml:"omitImportersFromShrinkwrapHash"`
}

// workspaceDTO holds the workspace-mode configuration.
type workspaceDTO struct {
	Enabled bool `yaml:"enabled"`
}
