// Package settings provides the loader for the rush.yaml settings file and
// the hash of the preferred-versions table.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"sort"

	"github.com/Josmithr/rushstack/internal/core/domain"
	"github.com/Josmithr/rushstack/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.SettingsLoader = (*Loader)(nil)
	_ ports.VersionsSource = (*Loader)(nil)
)

// Loader reads rush.yaml and the preferred-versions table from a repository.
type Loader struct{}

// NewLoader creates a new settings Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the settings file under the given repository root.
func (l *Loader) Load(rootDir string) (ports.Settings, error) {
	path := domain.SettingsPath(rootDir)

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the repo layout
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	// Unknown keys are rejected: a misspelled policy name must fail loudly
	// instead of silently disabling tracking.
	var file rushFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}

	variants := slices.Clone(file.Variants)
	slices.Sort(variants)
	variants = slices.Compact(variants)

	return &Resolved{
		trackShrinkwrap:  file.Policies.PreventManualShrinkwrapChanges,
		omitImporters:    file.Policies.OmitImportersFromShrinkwrapHash,
		workspaceEnabled: file.Workspace.Enabled,
		variants:         variants,
	}, nil
}

// PreferredVersionsHash hashes the preferred-versions table under the given
// repository root. Entries are hashed in sorted key order with NUL separators
// so the result is independent of file ordering. A missing table hashes as an
// empty table.
func (l *Loader) PreferredVersionsHash(rootDir string) (string, error) {
	path := domain.PreferredVersionsPath(rootDir)

	versions := map[string]string{}
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the repo layout
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, "failed to read preferred versions file"), "path", path)
		}
	} else if err := yaml.Unmarshal(data, &versions); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to parse preferred versions file"), "path", path)
	}

	keys := make([]string, 0, len(versions))
	for k := range versions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	hasher := xxhash.New()
	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(versions[k])
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

var _ ports.Settings = (*Resolved)(nil)

// Resolved is the immutable result of loading rush.yaml.
type Resolved struct {
	trackShrinkwrap  bool
	omitImporters    bool
	workspaceEnabled bool
	variants         []string
}

// TrackShrinkwrap reports whether lockfile-drift tracking is enabled.
func (r *Resolved) TrackShrinkwrap() bool {
	return r.trackShrinkwrap
}

// OmitImporters reports whether importer entries are excluded from the
// shrinkwrap hash.
func (r *Resolved) OmitImporters() bool {
	return r.omitImporters
}

// WorkspaceEnabled reports whether preferred-versions tracking is enabled.
func (r *Resolved) WorkspaceEnabled() bool {
	return r.workspaceEnabled
}

// Variants returns the declared variant names.
func (r *Resolved) Variants() []string {
	return slices.Clone(r.variants)
}

// HasVariant reports whether the named variant is declared.
func (r *Resolved) HasVariant(name string) bool {
	if name == "" {
		return true
	}
	return slices.Contains(r.variants, name)
}
