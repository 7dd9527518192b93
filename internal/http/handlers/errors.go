// Package handlers defines HTTP-layer error codes used across all API
// endpoints. The constants give clients a stable, machine-readable taxonomy
// alongside human-readable messages; handlers pass the most specific code to
// fail() with the corresponding status.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeIncompletePet = "incomplete_pet"
)
