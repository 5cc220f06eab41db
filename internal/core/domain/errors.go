package domain

import "errors"

var (
	// ErrRepoStateDrift is returned by the check operation when the persisted
	// repo state no longer matches the current dependency-resolution inputs.
	//
	// The sentinels are plain stdlib errors so that zerr.With wraps them with
	// the sentinel as the cause, keeping errors.Is matching intact; zerr.With
	// on a *zerr.Error returns a detached copy that breaks the unwrap chain.
	ErrRepoStateDrift = errors.New("repo state is out of date")

	// ErrUnknownVariant is returned when a requested variant is not declared in
	// the rush settings file.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrUnknownTip is returned when a custom tips file references a tip id
	// that is not part of the registry.
	ErrUnknownTip = errors.New("unknown tip id")
)
