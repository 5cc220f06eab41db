package domain

import "strings"

// TipSeverity classifies how a custom tip is presented.
type TipSeverity int

const (
	// SeverityInfo marks informational tips.
	SeverityInfo TipSeverity = iota
	// SeverityWarning marks tips about recoverable problems.
	SeverityWarning
	// SeverityError marks tips attached to failing operations.
	SeverityError
)

// String returns the display name of the severity.
func (s TipSeverity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// TipCategory groups tips by the subsystem whose diagnostics they annotate.
type TipCategory string

const (
	// CategoryRush covers tips about rush's own state and configuration.
	CategoryRush TipCategory = "rush"
	// CategoryPnpm covers tips matched against pnpm subprocess output.
	CategoryPnpm TipCategory = "pnpm"
)

// TipID identifies a custom tip. The set of ids is closed; user configuration
// may attach a message to an id but cannot introduce new ones.
type TipID string

const (
	TipRushInconsistentVersions     TipID = "TIP_RUSH_INCONSISTENT_VERSIONS"
	TipRushRepoStateMergeConflict   TipID = "TIP_RUSH_REPO_STATE_MERGE_CONFLICT"
	TipPnpmNoMatchingVersion        TipID = "TIP_PNPM_NO_MATCHING_VERSION"
	TipPnpmPeerDepIssues            TipID = "TIP_PNPM_PEER_DEP_ISSUES"
	TipPnpmOutdatedLockfile         TipID = "TIP_PNPM_OUTDATED_LOCKFILE"
	TipPnpmTarballIntegrity         TipID = "TIP_PNPM_TARBALL_INTEGRITY"
	TipPnpmMismatchedReleaseChannel TipID = "TIP_PNPM_MISMATCHED_RELEASE_CHANNEL"
)

// TipDefinition is the static description of a tip: its severity, its
// category, and an optional predicate matching raw diagnostic output.
type TipDefinition struct {
	Severity TipSeverity
	Category TipCategory

	// Match reports whether the tip applies to the given raw diagnostic text.
	// Nil for tips that are only ever printed explicitly by the tool.
	Match func(raw string) bool
}

// tipOrder fixes the evaluation order of predicates so that matching is
// deterministic regardless of map iteration order.
var tipOrder = []TipID{
	TipRushInconsistentVersions,
	TipRushRepoStateMergeConflict,
	TipPnpmNoMatchingVersion,
	TipPnpmPeerDepIssues,
	TipPnpmOutdatedLockfile,
	TipPnpmTarballIntegrity,
	TipPnpmMismatchedReleaseChannel,
}

// The pnpm substring predicates track observed pnpm error output and may need
// adjusting when pnpm changes its wording.
var tipRegistry = map[TipID]TipDefinition{
	TipRushInconsistentVersions: {
		Severity: SeverityError,
		Category: CategoryRush,
	},
	TipRushRepoStateMergeConflict: {
		Severity: SeverityWarning,
		Category: CategoryRush,
		Match:    containsAny("<<<<<<<"),
	},
	TipPnpmNoMatchingVersion: {
		Severity: SeverityError,
		Category: CategoryPnpm,
		Match:    containsAny("No matching version found for", "ERR_PNPM_NO_MATCHING_VERSION"),
	},
	TipPnpmPeerDepIssues: {
		Severity: SeverityWarning,
		Category: CategoryPnpm,
		Match:    containsAny("unmet peer", "ERR_PNPM_PEER_DEP_ISSUES"),
	},
	TipPnpmOutdatedLockfile: {
		Severity: SeverityError,
		Category: CategoryPnpm,
		Match:    containsAny("ERR_PNPM_OUTDATED_LOCKFILE"),
	},
	TipPnpmTarballIntegrity: {
		Severity: SeverityError,
		Category: CategoryPnpm,
		Match:    containsAny("ERR_PNPM_TARBALL_INTEGRITY"),
	},
	TipPnpmMismatchedReleaseChannel: {
		Severity: SeverityWarning,
		Category: CategoryPnpm,
		Match:    containsAny("ERR_PNPM_MISMATCHED_RELEASE_CHANNEL"),
	},
}

func containsAny(needles ...string) func(string) bool {
	return func(raw string) bool {
		for _, needle := range needles {
			if strings.Contains(raw, needle) {
				return true
			}
		}
		return false
	}
}

// LookupTip returns the definition for a tip id.
func LookupTip(id TipID) (TipDefinition, bool) {
	def, ok := tipRegistry[id]
	return def, ok
}

// KnownTipIDs returns all registered tip ids in evaluation order.
func KnownTipIDs() []TipID {
	ids := make([]TipID, len(tipOrder))
	copy(ids, tipOrder)
	return ids
}

// MatchTip evaluates the registry predicates against raw diagnostic text and
// returns the first matching tip id.
func MatchTip(raw string) (TipID, bool) {
	for _, id := range tipOrder {
		def := tipRegistry[id]
		if def.Match != nil && def.Match(raw) {
			return id, true
		}
	}
	return "", false
}
