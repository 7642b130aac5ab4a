package services

import "github.com/dmitrijs2005/carstorage/internal/common"

// Error is a rejected request. Message is what API callers see; Kind is one
// of the common sentinels and decides the status code.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func reject(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrInvalidCredentials = reject(common.ErrInvalidCredentials, "Invalid credentials")
	ErrForbidden          = reject(common.ErrorForbidden, "Forbidden")
	ErrNotFound           = reject(common.ErrorNotFound, "Not found")
	ErrEmailTaken         = reject(common.ErrorAlreadyExists, "Email already exists")
)

// Caller is the authenticated identity a request acts as.
type Caller struct {
	UserID  int64
	IsAdmin bool
}

// owns reports whether the caller may act on a record of userID.
func (c Caller) owns(userID int64) bool {
	return c.IsAdmin || c.UserID == userID
}
