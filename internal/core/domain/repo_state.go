// Package domain contains the core types for rush: the persisted repo state
// record, the repository layout, and the custom tip registry.
package domain

// InvalidHash is the sentinel stored in both hash fields when the persisted
// repo state file contained an unresolved merge conflict. It compares unequal
// to every real hash, so the next refresh always rewrites the file.
const InvalidHash = "INVALID"

// RepoStateBanner is the first line of the persisted repo state file.
const RepoStateBanner = "// DO NOT MODIFY THIS FILE MANUALLY BUT DO COMMIT IT. It is generated and used by Rush."

// RepoStateRecord is the on-disk shape of the repo state file.
//
// A field is present exactly when its tracking flag was enabled at the time of
// the last successful refresh. An empty string means "not tracked" and is
// omitted from the serialized form.
type RepoStateRecord struct {
	// PnpmShrinkwrapHash is the content hash of the committed pnpm lockfile.
	PnpmShrinkwrapHash string `json:"pnpmShrinkwrapHash,omitempty"`

	// PreferredVersionsHash is the hash of the preferred-versions table.
	PreferredVersionsHash string `json:"preferredVersionsHash,omitempty"`
}

// IsEmpty reports whether no field is tracked.
func (r RepoStateRecord) IsEmpty() bool {
	return r == RepoStateRecord{}
}
