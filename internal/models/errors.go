package models

import (
	"fmt"
	"net/http"
)

// ErrorCode is the stable machine-readable identifier of a domain error.
type ErrorCode string

const (
	CodeSelfFollow      ErrorCode = "SELF_FOLLOW"
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodeDuplicateFollow ErrorCode = "DUPLICATE_FOLLOW"
	CodeFollowNotFound  ErrorCode = "FOLLOW_NOT_FOUND"
	CodeInvalidInput    ErrorCode = "INVALID_INPUT"
	CodeInternal        ErrorCode = "INTERNAL"
)

// DomainError is an expected business outcome, not a malfunction. It carries
// the HTTP status and code the handler layer renders; anything that is not a
// DomainError is treated as an internal failure.
type DomainError struct {
	Code    ErrorCode
	Status  int
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Is matches on Code so errors.Is works across constructed variants that
// carry different messages.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

var (
	ErrSelfFollow      = &DomainError{Code: CodeSelfFollow, Status: http.StatusBadRequest, Message: "users cannot follow themselves"}
	ErrUserNotFound    = &DomainError{Code: CodeUserNotFound, Status: http.StatusNotFound, Message: "user not found"}
	ErrDuplicateFollow = &DomainError{Code: CodeDuplicateFollow, Status: http.StatusConflict, Message: "follow relationship already exists"}
	ErrFollowNotFound  = &DomainError{Code: CodeFollowNotFound, Status: http.StatusNotFound, Message: "follow relationship not found"}
)

// NewUserNotFound names which endpoint of the requested edge is missing.
func NewUserNotFound(role, id string) *DomainError {
	return &DomainError{
		Code:    CodeUserNotFound,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s user %s not found", role, id),
	}
}

// NewInvalidInput describes a request rejected at the HTTP boundary.
func NewInvalidInput(msg string) *DomainError {
	return &DomainError{Code: CodeInvalidInput, Status: http.StatusBadRequest, Message: msg}
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
}
