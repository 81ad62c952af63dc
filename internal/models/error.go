package models

// ErrorKind classifies every error the API returns. Clients should branch on
// the kind, not on the message text.
type ErrorKind string

const (
	KindValidation          ErrorKind = "validation"
	KindUnauthenticated     ErrorKind = "unauthenticated"
	KindInvalidToken        ErrorKind = "invalid_token"
	KindAccessDenied        ErrorKind = "access_denied"
	KindConflict            ErrorKind = "conflict"
	KindUnknownEmail        ErrorKind = "unknown_email"
	KindCredentialsMismatch ErrorKind = "credentials_mismatch"
	KindUpstreamStorage     ErrorKind = "upstream_storage"
	KindInternal            ErrorKind = "internal"
)

// APIError represents a standardized error response for the API.
// The message is kept under "error" so existing clients reading that field keep working.
type APIError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"error"`
}

// NewAPIError creates a new API error with the given kind and message
func NewAPIError(kind ErrorKind, message string) APIError {
	return APIError{
		Kind:    kind,
		Message: message,
	}
}
