// File: internal/pgnames/errors.go
// Project: Terminal Velocity
// Description: Codec error taxonomy
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package pgnames

import "errors"

// The four error kinds the codec surfaces (spec.md §7). The codec is
// deterministic and never retries; every operation returns one of these
// sentinels (or wraps one with fmt.Errorf's %w) instead of panicking.
var (
	// ErrUnparseable means the fragment tokeniser left a non-empty
	// residue, or the system-name grammar did not match.
	ErrUnparseable = errors.New("pgnames: unparseable name")

	// ErrNotFound means the name parsed but the sector codec could not
	// locate a matching grid cell — outside the modelled range, or no
	// row's run produces the requested fragment tuple.
	ErrNotFound = errors.New("pgnames: sector not found")

	// ErrInvalidPosition means the intra-sector locator's inputs produced
	// a position outside [0, 1280) on one or more axes. The caller still
	// receives a best-effort point alongside this error.
	ErrInvalidPosition = errors.New("pgnames: computed position out of range")

	// ErrInvariantViolated means a cache was accessed out of bounds or the
	// catalogue contradicted itself — an implementation bug, not a bad
	// input. See SPEC_FULL.md §3.2 for how callers outside the core react
	// to it.
	ErrInvariantViolated = errors.New("pgnames: internal invariant violated")

	// ErrNotSupported means the operation touches the Class 1a
	// (four-fragment) encode/decode path the reference implementation
	// itself leaves incomplete (spec.md §9). See DESIGN.md.
	ErrNotSupported = errors.New("pgnames: operation not supported for this name class")
)
