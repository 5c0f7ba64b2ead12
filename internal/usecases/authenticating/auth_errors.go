package authenticating

import (
	"errors"
	"fmt"
)

var (
	// Authentication errors
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserDisabled          = errors.New("user disabled")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("expired token")
	ErrInsufficientPrivilege = errors.New("insufficient privileges")
	ErrUserAlreadyExists     = errors.New("user already exists")

	// Validation errors
	ErrInvalidRequest      = errors.New("invalid request")
	ErrMissingRequiredData = errors.New("required data missing")

	// Password errors
	ErrWeakPassword      = errors.New("password does not meet strength requirements")
	ErrWrongPassword     = errors.New("current password is incorrect")
	ErrNoAdminPrivileges = errors.New("only administrators can perform this action")

	// Internal errors
	ErrGenerateID        = errors.New("error generating identifier")
	ErrDatabaseOperation = errors.New("error performing database operation")
)

// AuthError carries the API error code and optional user context along
// with the base error.
type AuthError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError reports whether the error relates to bad or
// unusable credentials.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrWrongPassword)
}

// IsAuthorizationError reports whether the error relates to token or
// privilege problems.
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrNoAdminPrivileges)
}

// NewAuthError creates an authentication error.
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError creates an authentication error with user context.
func NewUserAuthError(baseErr error, code string, userID string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
