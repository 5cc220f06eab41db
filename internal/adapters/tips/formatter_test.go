package tips_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Josmithr/rushstack/internal/adapters/tips"
	"github.com/Josmithr/rushstack/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTerminal captures styled lines for assertions.
type recordingTerminal struct {
	lines      []string
	severities []domain.TipSeverity
}

func (r *recordingTerminal) WriteLine(severity domain.TipSeverity, line string) {
	r.severities = append(r.severities, severity)
	r.lines = append(r.lines, line)
}

func writeTips(t *testing.T, rootDir, content string) {
	t.Helper()
	path := domain.CustomTipsPath(rootDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestPrint_FramesMessage(t *testing.T) {
	rootDir := t.TempDir()
	writeTips(t, rootDir, `{
  "customTips": [
    {
      "tipId": "TIP_PNPM_PEER_DEP_ISSUES",
      "message": "Try running the mismatch finder.\nSee the wiki for details."
    }
  ]
}`)

	formatter := tips.NewFormatter()
	term := &recordingTerminal{}

	printed, err := formatter.Print(rootDir, term, domain.TipPnpmPeerDepIssues)
	require.NoError(t, err)
	assert.True(t, printed)

	require.Equal(t, []string{
		fmt.Sprintf("| Custom Tip (%s)", domain.TipPnpmPeerDepIssues),
		"| Try running the mismatch finder.",
		"| See the wiki for details.",
	}, term.lines)

	// Severity comes from the registry: peer dep issues are a warning.
	for _, severity := range term.severities {
		assert.Equal(t, domain.SeverityWarning, severity)
	}
}

func TestPrint_NotConfigured(t *testing.T) {
	rootDir := t.TempDir()
	writeTips(t, rootDir, `{"customTips": []}`)

	formatter := tips.NewFormatter()
	term := &recordingTerminal{}

	printed, err := formatter.Print(rootDir, term, domain.TipPnpmOutdatedLockfile)
	require.NoError(t, err)
	assert.False(t, printed)
	assert.Empty(t, term.lines)
}

func TestPrint_MissingFile(t *testing.T) {
	formatter := tips.NewFormatter()
	term := &recordingTerminal{}

	printed, err := formatter.Print(t.TempDir(), term, domain.TipPnpmOutdatedLockfile)
	require.NoError(t, err)
	assert.False(t, printed)
}

func TestPrint_UnknownTipID(t *testing.T) {
	formatter := tips.NewFormatter()
	term := &recordingTerminal{}

	_, err := formatter.Print(t.TempDir(), term, domain.TipID("TIP_NOT_A_THING"))
	require.Error(t, err)
}

func TestPrint_UnknownTipIDInFile(t *testing.T) {
	rootDir := t.TempDir()
	writeTips(t, rootDir, `{"customTips": [{"tipId": "TIP_MADE_UP", "message": "hi"}]}`)

	formatter := tips.NewFormatter()
	term := &recordingTerminal{}

	_, err := formatter.Print(rootDir, term, domain.TipPnpmOutdatedLockfile)
	require.Error(t, err)
}

func TestPrint_UnknownFieldInFile(t *testing.T) {
	rootDir := t.TempDir()
	writeTips(t, rootDir, `{"customTips": [], "extra": true}`)

	formatter := tips.NewFormatter()

	_, err := formatter.Print(rootDir, &recordingTerminal{}, domain.TipPnpmOutdatedLockfile)
	require.Error(t, err)
}

func TestPrintWithSeverity_Overrides(t *testing.T) {
	rootDir := t.TempDir()
	writeTips(t, rootDir, `{"customTips": [{"tipId": "TIP_PNPM_PEER_DEP_ISSUES", "message": "hi"}]}`)

	formatter := tips.NewFormatter()
	term := &recordingTerminal{}

	printed, err := formatter.PrintWithSeverity(rootDir, term, domain.TipPnpmPeerDepIssues, domain.SeverityError)
	require.NoError(t, err)
	assert.True(t, printed)

	for _, severity := range term.severities {
		assert.Equal(t, domain.SeverityError, severity)
	}
}
