package sord

import "errors"

// Sentinel errors for the core engine (SPEC_FULL.md §10.2), the same
// package-level var-block idiom the teacher uses for ErrNotFound.
var (
	// ErrWildcardPosition is returned when a caller attempts to add a
	// quad with Wildcard in the subject, predicate, or object position.
	ErrWildcardPosition = errors.New("sord: wildcard not allowed in subject, predicate, or object position")

	// ErrNodeCrossWorld is the documented contract violation of passing
	// a Node from one World to a Model built against another. Detected
	// cheaply (a single owner-pointer comparison) and reported via panic
	// from Model.Add/Remove, matching §7's "undefined behavior, guarded
	// by internal assertions where cheap."
	ErrNodeCrossWorld = errors.New("sord: node does not belong to this model's world")

	// ErrDoubleRelease is the panic value when World.Release is called on
	// a Node whose reference count has already reached zero — a
	// programmer contract violation, not a runtime condition.
	ErrDoubleRelease = errors.New("sord: release of node with zero reference count")
)
