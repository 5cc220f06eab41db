package ports

//go:generate mockgen -source=versions.go -destination=mocks/mock_versions.go -package=mocks

// VersionsSource computes the hash of the preferred-versions table.
type VersionsSource interface {
	// PreferredVersionsHash returns a deterministic hash of the current
	// preferred-versions table under the repository root. A missing table
	// hashes as an empty table.
	PreferredVersionsHash(rootDir string) (string, error)
}
