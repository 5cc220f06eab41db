// Package repostate tracks whether a repository's dependency-resolution
// inputs have drifted since the last reconciliation. It persists a small JSON
// record of input hashes and rewrites it only when something changed, so the
// file stays quiet in version control.
package repostate

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Josmithr/rushstack/internal/core/domain"
	"github.com/Josmithr/rushstack/internal/core/ports"
	"go.trai.ch/zerr"
)

// conflictMarker is the start of an unresolved git merge conflict hunk.
const conflictMarker = "<<<<<<<"

// Tracker is the in-memory view of the persisted repo state file.
//
// It is constructed by Load, mutated only by Refresh, and assumes
// single-threaded use within one tool invocation.
type Tracker struct {
	path    string
	variant string

	record   domain.RepoStateRecord
	isValid  bool
	modified bool
}

// RefreshInputs carries the caller's resolved configuration for a refresh.
type RefreshInputs struct {
	RootDir     string
	Settings    ports.Settings
	Shrinkwraps ports.ShrinkwrapSource
	Versions    ports.VersionsSource
}

// Load reads the repo state file at the given path.
//
// A missing file is not an error: the tracker starts empty and valid. A file
// that fails to parse but contains a git merge conflict marker yields a
// tracker with sentinel hashes and IsValid() == false, so the caller can still
// refresh instead of crashing on a transient merge artifact. Any other parse
// failure is fatal.
func Load(path, variant string) (*Tracker, error) {
	t := &Tracker{
		path:    filepath.Clean(path),
		variant: variant,
		isValid: true,
	}

	raw, err := os.ReadFile(t.path) //nolint:gosec // Path is cleaned and provided by trusted caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return t, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read repo state file"), "path", t.path)
	}

	record, err := decodeRecord(raw)
	if err != nil {
		if !hasConflictMarker(raw) {
			return nil, zerr.With(zerr.Wrap(err, "repo state file is corrupt"), "path", t.path)
		}
		// A merge left conflict hunks in the file. Treat the stored hashes as
		// untrusted rather than failing; the next refresh overwrites them.
		t.record = domain.RepoStateRecord{
			PnpmShrinkwrapHash:    domain.InvalidHash,
			PreferredVersionsHash: domain.InvalidHash,
		}
		t.isValid = false
		return t, nil
	}

	t.record = record
	return t, nil
}

// decodeRecord parses the file content, skipping the banner comment lines,
// and rejects any field outside the two-field schema.
func decodeRecord(raw []byte) (domain.RepoStateRecord, error) {
	var record domain.RepoStateRecord

	dec := json.NewDecoder(bytes.NewReader(stripComments(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&record); err != nil {
		return domain.RepoStateRecord{}, err
	}
	return record, nil
}

// stripComments removes lines whose first non-blank characters are "//".
// The persisted file carries a banner comment above the JSON body.
func stripComments(raw []byte) []byte {
	lines := strings.Split(string(raw), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		kept = append(kept, line)
	}
	return []byte(strings.Join(kept, "\n"))
}

// hasConflictMarker reports whether any line of the raw content starts with
// the seven-character git conflict marker.
func hasConflictMarker(raw []byte) bool {
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.HasPrefix(line, conflictMarker) {
			return true
		}
	}
	return false
}

// Path returns the location of the persisted repo state file.
func (t *Tracker) Path() string {
	return t.path
}

// Variant returns the configuration variant this tracker was loaded for.
func (t *Tracker) Variant() string {
	return t.variant
}

// IsValid reports whether the persisted record could be trusted at load time.
// It is false only when the file contained an unresolved merge conflict, and
// becomes true again after any successful refresh.
func (t *Tracker) IsValid() bool {
	return t.isValid
}

// ShrinkwrapHash returns the stored lockfile hash, or "" when not tracked.
func (t *Tracker) ShrinkwrapHash() string {
	return t.record.PnpmShrinkwrapHash
}

// PreferredVersionsHash returns the stored preferred-versions hash, or ""
// when not tracked.
func (t *Tracker) PreferredVersionsHash() string {
	return t.record.PreferredVersionsHash
}

// Desired computes the record a refresh would persist, without mutating the
// tracker or touching the file. The check command uses it to detect drift.
func (t *Tracker) Desired(in RefreshInputs) (domain.RepoStateRecord, error) {
	var desired domain.RepoStateRecord

	if in.Settings.TrackShrinkwrap() {
		hash, err := t.computeShrinkwrapHash(in)
		if err != nil {
			return domain.RepoStateRecord{}, err
		}
		desired.PnpmShrinkwrapHash = hash
	}

	if in.Settings.WorkspaceEnabled() {
		hash, err := in.Versions.PreferredVersionsHash(in.RootDir)
		if err != nil {
			return domain.RepoStateRecord{}, zerr.Wrap(err, "failed to hash preferred versions")
		}
		desired.PreferredVersionsHash = hash
	}

	return desired, nil
}

// Refresh reconciles the tracker against the current inputs and persists the
// record when anything changed. It returns whether a write happened.
//
// Each tracked field goes through the same transition: populated when its
// feature is enabled and an input is available, cleared otherwise. A field
// whose stored value was absent or the INVALID sentinel counts as changed.
func (t *Tracker) Refresh(in RefreshInputs) (bool, error) {
	desired, err := t.Desired(in)
	if err != nil {
		return false, err
	}

	t.reconcile(&t.record.PnpmShrinkwrapHash, desired.PnpmShrinkwrapHash)
	t.reconcile(&t.record.PreferredVersionsHash, desired.PreferredVersionsHash)

	// A completed refresh re-establishes trust, superseding any prior
	// merge-conflict invalidation.
	t.isValid = true

	if !t.modified {
		return false, nil
	}

	if err := t.write(); err != nil {
		return false, err
	}
	t.modified = false
	return true, nil
}

// computeShrinkwrapHash hashes the committed lockfile for the tracker's
// variant. A missing lockfile yields "" so the field is cleared, matching the
// disabled-feature transition.
func (t *Tracker) computeShrinkwrapHash(in RefreshInputs) (string, error) {
	shrinkwrap, err := in.Shrinkwraps.Load(in.RootDir, t.variant)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to load shrinkwrap"), "variant", t.variant)
	}
	if shrinkwrap == nil {
		return "", nil
	}

	hash, err := shrinkwrap.Hash(in.Settings.OmitImporters())
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash shrinkwrap"), "variant", t.variant)
	}
	return hash, nil
}

// reconcile applies one field's transition and marks the tracker dirty when
// the stored value changed. An empty desired value clears the field.
func (t *Tracker) reconcile(stored *string, desired string) {
	if *stored == desired {
		return
	}
	*stored = desired
	t.modified = true
}

// write serializes the record with its banner and overwrites the file.
// Line endings are normalized to LF and the file ends with a newline.
func (t *Tracker) write() error {
	body, err := json.MarshalIndent(t.record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal repo state")
	}

	var buf bytes.Buffer
	buf.WriteString(domain.RepoStateBanner)
	buf.WriteByte('\n')
	buf.Write(body)
	buf.WriteByte('\n')

	if err := os.MkdirAll(filepath.Dir(t.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create repo state directory"), "path", t.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(t.path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write repo state file"), "path", t.path)
	}
	return nil
}
