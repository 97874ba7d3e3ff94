// Package handlers defines the HTTP-layer error codes used across all API
// endpoints. Codes are lowercase snake_case and stable: clients branch on
// them programmatically, messages are for humans. Handlers pick the most
// specific matching code and pass it to fail() with the HTTP status.
package handlers

const (
	ErrCodeBadRequest  = "bad_request"
	ErrCodeNotFound    = "not_found"
	ErrCodeConflict    = "conflict"
	ErrCodeRateLimited = "too_many_requests"
	ErrCodeInternal    = "internal_error"

	// Domain-specific:
	ErrCodeCreateFailed     = "create_failed"
	ErrCodeListFailed       = "list_failed"
	ErrCodeInvalidStatus    = "invalid_status"
	ErrCodeStoreNotFound    = "store_not_found"
	ErrCodePrivateCatalogue = "catalogue_private"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
