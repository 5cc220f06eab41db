// Package app implements the application layer for rush.
package app

import (
	"context"
	"fmt"

	"github.com/Josmithr/rushstack/internal/core/domain"
	"github.com/Josmithr/rushstack/internal/core/ports"
	"github.com/Josmithr/rushstack/internal/engine/repostate"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// checkConcurrency bounds how many variants are checked in parallel. Each
// check only reads a handful of small files, so a low bound is plenty.
const checkConcurrency = 4

// App represents the main application logic.
type App struct {
	settings    ports.SettingsLoader
	shrinkwraps ports.ShrinkwrapSource
	versions    ports.VersionsSource
	tips        ports.TipPresenter
	term        ports.Terminal
	log         ports.Logger
}

// New creates a new App instance.
func New(
	settings ports.SettingsLoader,
	shrinkwraps ports.ShrinkwrapSource,
	versions ports.VersionsSource,
	tips ports.TipPresenter,
	term ports.Terminal,
	log ports.Logger,
) *App {
	return &App{
		settings:    settings,
		shrinkwraps: shrinkwraps,
		versions:    versions,
		tips:        tips,
		term:        term,
		log:         log,
	}
}

// checkResult is the outcome of checking one variant.
type checkResult struct {
	variant string
	invalid bool
	drifted bool
}

func (r checkResult) describe() string {
	name := r.variant
	if name == "" {
		name = "default"
	}
	return name
}

// Check verifies that the persisted repo state matches the current
// dependency-resolution inputs for the requested variants, without writing
// anything. When no variants are given, the default variant and every
// declared variant are checked. It returns ErrRepoStateDrift when any variant
// is out of date or untrusted.
func (a *App) Check(ctx context.Context, rootDir string, variants []string) error {
	settings, err := a.settings.Load(rootDir)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}

	if len(variants) == 0 {
		variants = append([]string{""}, settings.Variants()...)
	}
	for _, variant := range variants {
		if !settings.HasVariant(variant) {
			return zerr.With(domain.ErrUnknownVariant, "variant", variant)
		}
	}

	results := make([]checkResult, len(variants))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(checkConcurrency)

	for i, variant := range variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := a.checkVariant(rootDir, variant, settings)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return a.reportCheck(rootDir, results)
}

// checkVariant loads the tracker for one variant and compares the stored
// record against freshly computed hashes.
func (a *App) checkVariant(rootDir, variant string, settings ports.Settings) (checkResult, error) {
	tracker, err := repostate.Load(domain.RepoStatePath(rootDir, variant), variant)
	if err != nil {
		return checkResult{}, err
	}

	desired, err := tracker.Desired(repostate.RefreshInputs{
		RootDir:     rootDir,
		Settings:    settings,
		Shrinkwraps: a.shrinkwraps,
		Versions:    a.versions,
	})
	if err != nil {
		return checkResult{}, err
	}

	stored := domain.RepoStateRecord{
		PnpmShrinkwrapHash:    tracker.ShrinkwrapHash(),
		PreferredVersionsHash: tracker.PreferredVersionsHash(),
	}

	return checkResult{
		variant: variant,
		invalid: !tracker.IsValid(),
		drifted: stored != desired,
	}, nil
}

// reportCheck logs the per-variant outcomes and prints the merge-conflict tip
// when an untrusted state file was found.
func (a *App) reportCheck(rootDir string, results []checkResult) error {
	var bad []checkResult
	for _, result := range results {
		switch {
		case result.invalid:
			a.log.Warn(fmt.Sprintf("repo state for variant %q contains an unresolved merge conflict; run 'rush update'", result.describe()))
			bad = append(bad, result)
		case result.drifted:
			a.log.Warn(fmt.Sprintf("repo state for variant %q is out of date; run 'rush update'", result.describe()))
			bad = append(bad, result)
		default:
			a.log.Info(fmt.Sprintf("repo state for variant %q is up to date", result.describe()))
		}
	}

	if len(bad) == 0 {
		return nil
	}

	for _, result := range bad {
		if !result.invalid {
			continue
		}
		if _, err := a.tips.Print(rootDir, a.term, domain.TipRushRepoStateMergeConflict); err != nil {
			return err
		}
		break
	}

	return zerr.With(domain.ErrRepoStateDrift, "variants", describeAll(bad))
}

func describeAll(results []checkResult) string {
	names := make([]string, len(results))
	for i, result := range results {
		names[i] = result.describe()
	}
	return fmt.Sprintf("%v", names)
}

// Update reconciles the repo state for one variant and persists it when
// anything changed. It returns whether the state file was rewritten.
func (a *App) Update(ctx context.Context, rootDir, variant string) (bool, error) {
	settings, err := a.settings.Load(rootDir)
	if err != nil {
		return false, zerr.Wrap(err, "failed to load settings")
	}
	if !settings.HasVariant(variant) {
		return false, zerr.With(domain.ErrUnknownVariant, "variant", variant)
	}

	tracker, err := repostate.Load(domain.RepoStatePath(rootDir, variant), variant)
	if err != nil {
		return false, err
	}

	if !tracker.IsValid() {
		a.log.Warn("repo state file contained an unresolved merge conflict; rebuilding it")
		if _, err := a.tips.Print(rootDir, a.term, domain.TipRushRepoStateMergeConflict); err != nil {
			return false, err
		}
	}

	wrote, err := tracker.Refresh(repostate.RefreshInputs{
		RootDir:     rootDir,
		Settings:    settings,
		Shrinkwraps: a.shrinkwraps,
		Versions:    a.versions,
	})
	if err != nil {
		return false, err
	}

	if wrote {
		a.log.Info(fmt.Sprintf("updated %s", tracker.Path()))
	} else {
		a.log.Info("repo state is already up to date")
	}
	return wrote, nil
}
