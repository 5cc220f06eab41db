package ports

//go:generate mockgen -source=shrinkwrap.go -destination=mocks/mock_shrinkwrap.go -package=mocks

// ShrinkwrapSource locates the committed lockfile for a variant.
type ShrinkwrapSource interface {
	// Load reads the lockfile for the given variant under the repository root.
	// Returns nil, nil when no lockfile exists for the variant; this is a
	// recoverable condition, not an error.
	Load(rootDir, variant string) (Shrinkwrap, error)
}

// Shrinkwrap is a loaded lockfile that can produce a content hash.
type Shrinkwrap interface {
	// Hash computes a deterministic content hash. When omitImporters is set,
	// workspace-linked importer entries do not count toward the hash. The hash
	// is for equality comparison across runs only; it is not cryptographic.
	Hash(omitImporters bool) (string, error)
}
