// Package shrinkwrap reads the committed pnpm lockfile and computes its
// content hash for drift tracking.
package shrinkwrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Josmithr/rushstack/internal/core/domain"
	"github.com/Josmithr/rushstack/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ShrinkwrapSource = (*Source)(nil)

// importersKey is the top-level lockfile key holding workspace-linked
// importer entries, which can be excluded from the tracked hash.
const importersKey = "importers"

// Source implements ports.ShrinkwrapSource against the repository layout.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Load reads the lockfile for the given variant. A missing lockfile is a
// recoverable condition and returns nil, nil.
func (s *Source) Load(rootDir, variant string) (ports.Shrinkwrap, error) {
	path := domain.ShrinkwrapPath(rootDir, variant)

	raw, err := os.ReadFile(path) //nolint:gosec // Path is derived from the repo layout
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read shrinkwrap file"), "path", path)
	}

	return &Shrinkwrap{path: path, raw: raw}, nil
}

// Shrinkwrap is a loaded pnpm lockfile. The content is treated as an opaque
// hashing input; rush never validates the lockfile format itself.
type Shrinkwrap struct {
	path string
	raw  []byte
}

// Hash computes the deterministic content hash of the lockfile.
//
// Without omitImporters the raw bytes are hashed directly. With it, the YAML
// document is parsed, the importers mapping is dropped, and the hash covers a
// canonical re-serialization, so the result is stable across key order.
func (s *Shrinkwrap) Hash(omitImporters bool) (string, error) {
	content := s.raw

	if omitImporters {
		var doc map[string]any
		if err := yaml.Unmarshal(s.raw, &doc); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to parse shrinkwrap file"), "path", s.path)
		}
		delete(doc, importersKey)

		canonical, err := yaml.Marshal(doc)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to serialize shrinkwrap content"), "path", s.path)
		}
		content = canonical
	}

	return fmt.Sprintf("%016x", xxhash.Sum64(content)), nil
}
