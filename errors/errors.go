// Package errors defines all exported error sentinels for the hashdups module.
//
// Both the top-level hashdups package and the dupgroups command import from
// here, so errors.Is checks work across package boundaries.
package errors

import "errors"

// Input errors
var (
	// ErrInputUnavailable is returned when the hash list cannot be opened,
	// mapped or read. The underlying cause is wrapped alongside it.
	ErrInputUnavailable = errors.New("hashdups: input unavailable")
)
