package domain

import "path/filepath"

const (
	// CommonConfigDirName is the repo-relative directory holding rush config files.
	CommonConfigDirName = "common/config/rush"

	// VariantsDirName is the directory under the config dir holding variant sets.
	VariantsDirName = "variants"

	// RepoStateFileName is the name of the persisted repo state file.
	RepoStateFileName = "repo-state.json"

	// ShrinkwrapFileName is the name of the committed pnpm lockfile.
	ShrinkwrapFileName = "pnpm-lock.yaml"

	// SettingsFileName is the name of the tool settings file.
	SettingsFileName = "rush.yaml"

	// PreferredVersionsFileName is the name of the preferred-versions table.
	PreferredVersionsFileName = "preferred-versions.yaml"

	// CustomTipsFileName is the name of the user-authored tips file.
	CustomTipsFileName = "custom-tips.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// variantDir returns the config directory for the given variant, which is the
// common config dir itself when the variant is empty.
func variantDir(rootDir, variant string) string {
	if variant == "" {
		return filepath.Join(rootDir, CommonConfigDirName)
	}
	return filepath.Join(rootDir, CommonConfigDirName, VariantsDirName, variant)
}

// RepoStatePath returns the path of the repo state file for a variant.
func RepoStatePath(rootDir, variant string) string {
	return filepath.Join(variantDir(rootDir, variant), RepoStateFileName)
}

// ShrinkwrapPath returns the path of the committed lockfile for a variant.
func ShrinkwrapPath(rootDir, variant string) string {
	return filepath.Join(variantDir(rootDir, variant), ShrinkwrapFileName)
}

// SettingsPath returns the path of the rush settings file.
func SettingsPath(rootDir string) string {
	return filepath.Join(rootDir, SettingsFileName)
}

// PreferredVersionsPath returns the path of the preferred-versions table.
func PreferredVersionsPath(rootDir string) string {
	return filepath.Join(rootDir, CommonConfigDirName, PreferredVersionsFileName)
}

// CustomTipsPath returns the path of the custom tips file.
func CustomTipsPath(rootDir string) string {
	return filepath.Join(rootDir, CommonConfigDirName, CustomTipsFileName)
}
