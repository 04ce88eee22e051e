// Package apierrors defines the typed failures services return to the transport.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an APIError.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindUnauthenticated
	KindCrypto
	KindConflict
	KindStore
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindValidation:      "validation",
	KindNotFound:        "not_found",
	KindAuthorization:   "authorization",
	KindUnauthenticated: "unauthenticated",
	KindCrypto:          "crypto",
	KindConflict:        "conflict",
	KindStore:           "store",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// HTTPStatus maps the kind to a response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindCrypto:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// APIError is a failure with a client facing message. Err keeps the cause for logs.
type APIError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first APIError in err's chain.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

func newErr(kind Kind, err error, format string, args ...any) *APIError {
	return &APIError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func NewErrValidation(format string, args ...any) *APIError {
	return newErr(KindValidation, nil, format, args...)
}

func NewErrInvalidUsername(username string) *APIError {
	return newErr(KindValidation, nil, "invalid username %q: 4 to 16 lowercase letters or digits", username)
}

func NewErrInvalidPassword() *APIError {
	return newErr(KindValidation, nil, "invalid password: 5 to 16 letters, digits or @_:.;")
}

func NewErrInvalidColor(field, value string) *APIError {
	return newErr(KindValidation, nil, "invalid %s color %q: expected #RRGGBB in uppercase hex", field, value)
}

func NewErrMessageTooLong(size, limit int) *APIError {
	return newErr(KindValidation, nil, "message is %d bytes, limit is %d", size, limit)
}

func NewErrUserNotFound(username string) *APIError {
	return newErr(KindNotFound, nil, "user %q not found", username)
}

func NewErrChatNotFound(chatID string) *APIError {
	return newErr(KindNotFound, nil, "chat %s not found", chatID)
}

func NewErrFileNotFound(fileID string) *APIError {
	return newErr(KindNotFound, nil, "file %s not found", fileID)
}

func NewErrInviteNotFound() *APIError {
	return newErr(KindNotFound, nil, "invite code not found")
}

func NewErrTokenNotFound() *APIError {
	return newErr(KindNotFound, nil, "token not found")
}

func NewErrHostNotFound() *APIError {
	return newErr(KindNotFound, nil, "host information not found")
}

func NewErrAdminRequired() *APIError {
	return newErr(KindAuthorization, nil, "admin privileges required")
}

func NewErrCannotKickAdmin(username string) *APIError {
	return newErr(KindAuthorization, nil, "user %q is an admin and cannot be kicked", username)
}

func NewErrNotParticipant(chatID string) *APIError {
	return newErr(KindAuthorization, nil, "not a participant of chat %s", chatID)
}

func NewErrNotFileOwner(fileID string) *APIError {
	return newErr(KindAuthorization, nil, "file %s belongs to another user", fileID)
}

func NewErrMissingAuthorizationToken() *APIError {
	return newErr(KindUnauthenticated, nil, "missing authorization token")
}

func NewErrInvalidAuthorizationToken() *APIError {
	return newErr(KindUnauthenticated, nil, "invalid authorization token")
}

func NewErrInvalidCredentials() *APIError {
	return newErr(KindUnauthenticated, nil, "invalid username or password")
}

func NewErrCrypto(err error, format string, args ...any) *APIError {
	return newErr(KindCrypto, err, format, args...)
}

func NewErrUserExists(username string) *APIError {
	return newErr(KindConflict, nil, "user %q already exists", username)
}

func NewErrChatExists(sender, receiver string) *APIError {
	return newErr(KindConflict, nil, "chat from %q to %q already exists", sender, receiver)
}

func NewErrInviteExists() *APIError {
	return newErr(KindConflict, nil, "invite code already exists")
}

// NewErrStore hides the persistence failure from the client but keeps it for logs.
func NewErrStore(err error) *APIError {
	return newErr(KindStore, err, "internal storage error")
}
