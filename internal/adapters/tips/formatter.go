// Package tips prints user-authored guidance messages keyed by tip id.
//
// The set of tip ids and their severities is fixed in the domain registry;
// the custom-tips.json file only attaches a repository-specific message to an
// id. Tips are framed with a "| " left margin so they stand out from
// surrounding subprocess output.
package tips

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Josmithr/rushstack/internal/core/domain"
	"github.com/Josmithr/rushstack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TipPresenter = (*Formatter)(nil)

// tipsFile represents the structure of the custom-tips.json file.
type tipsFile struct {
	CustomTips []customTip `json:"customTips"`
}

// customTip attaches a message to a registered tip id.
type customTip struct {
	TipID   string `json:"tipId"`
	Message string `json:"message"`
}

// Formatter implements ports.TipPresenter.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// load reads the custom tips for a repository. A missing file means no tips
// are configured.
func (f *Formatter) load(rootDir string) (map[domain.TipID]string, error) {
	path := domain.CustomTipsPath(rootDir)

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the repo layout
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[domain.TipID]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read custom tips file"), "path", path)
	}

	var file tipsFile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse custom tips file"), "path", path)
	}

	tips := make(map[domain.TipID]string, len(file.CustomTips))
	for _, tip := range file.CustomTips {
		id := domain.TipID(tip.TipID)
		if _, ok := domain.LookupTip(id); !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTip, "invalid custom tips file"), "tip_id", tip.TipID)
		}
		tips[id] = tip.Message
	}
	return tips, nil
}

// Print writes the configured tip for the given id at its registry severity.
// Returns false when no message is configured for the id.
func (f *Formatter) Print(rootDir string, term ports.Terminal, id domain.TipID) (bool, error) {
	def, ok := domain.LookupTip(id)
	if !ok {
		return false, zerr.With(domain.ErrUnknownTip, "tip_id", string(id))
	}
	return f.print(rootDir, term, id, def.Severity)
}

// PrintWithSeverity is Print with the registry severity overridden.
func (f *Formatter) PrintWithSeverity(rootDir string, term ports.Terminal, id domain.TipID, severity domain.TipSeverity) (bool, error) {
	if _, ok := domain.LookupTip(id); !ok {
		return false, zerr.With(domain.ErrUnknownTip, "tip_id", string(id))
	}
	return f.print(rootDir, term, id, severity)
}

func (f *Formatter) print(rootDir string, term ports.Terminal, id domain.TipID, severity domain.TipSeverity) (bool, error) {
	tips, err := f.load(rootDir)
	if err != nil {
		return false, err
	}

	message, ok := tips[id]
	if !ok {
		return false, nil
	}

	term.WriteLine(severity, fmt.Sprintf("| Custom Tip (%s)", id))
	for _, line := range strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n") {
		term.WriteLine(severity, "| "+line)
	}
	return true, nil
}
