package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Josmithr/rushstack/cmd/rush/commands"
	"github.com/Josmithr/rushstack/internal/adapters/logger"
	"github.com/Josmithr/rushstack/internal/adapters/settings"
	"github.com/Josmithr/rushstack/internal/adapters/shrinkwrap"
	"github.com/Josmithr/rushstack/internal/adapters/terminal"
	"github.com/Josmithr/rushstack/internal/adapters/tips"
	"github.com/Josmithr/rushstack/internal/app"
	"github.com/Josmithr/rushstack/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCLI() *commands.CLI {
	log := logger.New()
	loader := settings.NewLoader()
	a := app.New(loader, shrinkwrap.NewSource(), loader, tips.NewFormatter(), terminal.New(os.Stderr), log)
	return commands.New(a)
}

func scaffoldRepo(t *testing.T) string {
	t.Helper()
	rootDir := t.TempDir()

	require.NoError(t, os.WriteFile(domain.SettingsPath(rootDir), []byte(`
version: "1"
policies:
  preventManualShrinkwrapChanges: true
workspace:
  enabled: true
`), 0o600))

	lockPath := domain.ShrinkwrapPath(rootDir, "")
	require.NoError(t, os.MkdirAll(filepath.Dir(lockPath), 0o750))
	require.NoError(t, os.WriteFile(lockPath, []byte("lockfileVersion: '6.0'\n"), 0o600))

	return rootDir
}

func TestUpdateCommand(t *testing.T) {
	rootDir := scaffoldRepo(t)

	cli := newCLI()
	cli.SetArgs([]string{"update", "-r", rootDir})
	require.NoError(t, cli.Execute(context.Background()))

	_, err := os.Stat(domain.RepoStatePath(rootDir, ""))
	assert.NoError(t, err)
}

func TestCheckCommand_CleanAfterUpdate(t *testing.T) {
	rootDir := scaffoldRepo(t)

	cli := newCLI()
	cli.SetArgs([]string{"update", "-r", rootDir})
	require.NoError(t, cli.Execute(context.Background()))

	cli = newCLI()
	cli.SetArgs([]string{"check", "-r", rootDir})
	assert.NoError(t, cli.Execute(context.Background()))
}

func TestCheckCommand_ReportsDrift(t *testing.T) {
	rootDir := scaffoldRepo(t)

	cli := newCLI()
	cli.SetArgs([]string{"check", "-r", rootDir})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRepoStateDrift))
}

func TestCheckCommand_UnknownVariant(t *testing.T) {
	rootDir := scaffoldRepo(t)

	cli := newCLI()
	cli.SetArgs([]string{"check", "-r", rootDir, "--variant", "nope"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownVariant))
}

func TestCheckCommand_RejectsPositionalArgs(t *testing.T) {
	cli := newCLI()
	cli.SetArgs([]string{"check", "extra"})
	assert.Error(t, cli.Execute(context.Background()))
}

func TestUpdateCommand_MissingSettings(t *testing.T) {
	cli := newCLI()
	cli.SetArgs([]string{"update", "-r", t.TempDir()})
	assert.Error(t, cli.Execute(context.Background()))
}
