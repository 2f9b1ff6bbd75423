// Package common defines shared constants and sentinel errors used across
// the healthmate client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors (missing, rejected or expired credentials).
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrSessionSuperseded marks a completion that arrived after the session
	// it belonged to had been replaced or cleared. The result must be discarded.
	ErrSessionSuperseded = errors.New("session superseded")
)
