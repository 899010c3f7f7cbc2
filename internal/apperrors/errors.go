package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrRateNotFound indicates that no exchange rate is stored for an ordered currency pair.
// It wraps ErrNotFound so boundary code can treat both the same way.
var ErrRateNotFound = fmt.Errorf("exchange rate %w", ErrNotFound)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials is returned for both unknown usernames and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidToken indicates a malformed token or one whose signature does not verify.
var ErrInvalidToken = errors.New("invalid token")

// ErrTokenExpired indicates a correctly signed token past its expiry.
var ErrTokenExpired = errors.New("token has expired")

// ErrUnauthorized indicates that the route requires an identity and none is bound.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the bound identity lacks the role the route requires.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP-ish status code plus the underlying cause. It is used for
// storage and other unexpected failures whose detail must not reach the client.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error wrapping ErrNotFound with a descriptive message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewDuplicateError returns an error wrapping ErrDuplicate with a descriptive message.
func NewDuplicateError(message string) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, message)
}

// ValidationError collects every field violation found in one request.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single, non field specific message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{"": message}}
}

// NewFieldValidationError creates a ValidationError for one field.
func NewFieldValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records a violation for field. The first message recorded for a field wins.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// HasErrors reports whether any violation was recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			parts = append(parts, e.Fields[k])
			continue
		}
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match a *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
