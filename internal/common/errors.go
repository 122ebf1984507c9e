// Package common defines shared constants and sentinel errors used across
// the daybook client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository and store lookup errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors (missing or invalid settings/credentials).
	// Fatal before any sync is attempted.
	ErrConfig = errors.New("invalid configuration")

	// Remote-store errors.
	ErrConnectivity = errors.New("remote unreachable")
	ErrTransfer     = errors.New("transfer failed")

	// Validation errors (malformed index, entry missing required fields).
	ErrValidation = errors.New("validation error")
)
