package ports

import "github.com/Josmithr/rushstack/internal/core/domain"

//go:generate mockgen -source=terminal.go -destination=mocks/mock_terminal.go -package=mocks

// Terminal is a severity-aware line sink for user-facing output.
type Terminal interface {
	// WriteLine writes a single line styled for the given severity.
	WriteLine(severity domain.TipSeverity, line string)
}

// TipPresenter prints user-authored tips to a terminal.
type TipPresenter interface {
	// Print writes the configured tip for the given id at its registry
	// severity. Returns false when no message is configured for the id.
	Print(rootDir string, term Terminal, id domain.TipID) (bool, error)

	// PrintWithSeverity is Print with the registry severity overridden.
	PrintWithSeverity(rootDir string, term Terminal, id domain.TipID, severity domain.TipSeverity) (bool, error)
}
