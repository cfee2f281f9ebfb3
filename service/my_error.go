package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that record or row is absent in repository or storage.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrNoSession means that no authenticated client is available.
	ErrNoSession = "no_session"
	// ErrTransport means that the request did not reach the backend or the backend answered with a non-2xx status.
	ErrTransport = "transport_error"
	// ErrParse means that a response payload is malformed or misses a required field.
	ErrParse = "parse_error"
	// ErrAppNotFound means that the target application is absent from the user's app list.
	ErrAppNotFound = "app_not_found"
)

const (
	msgNoSession    = "Salesforce client not available."
	msgUnknownError = "An unknown error occurred."
)

// MyError represents an error within the context of crmviewer services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrBadParameter, message, inner)
}

// NewNoSessionError is returned by every operation started without an authenticated client.
func NewNoSessionError() *MyError {
	return NewMyError(ErrNoSession, msgNoSession, nil)
}

func NewTransportError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrTransport, message, inner)
}

func NewParseError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrParse, message, inner)
}

func NewAppNotFoundError(developerName string) *MyError {
	return NewMyError(ErrAppNotFound, fmt.Sprintf("The '%s' app was not found.", developerName), nil)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a crmviewer error, or nil if it is not a crmviewer error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

// UserMessage renders err for display: the Message of a crmviewer error,
// the plain error text otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if myErr := ToMyError(err); myErr != nil {
		msg = myErr.Message
	}
	if msg == "" {
		return msgUnknownError
	}
	return msg
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsNoSessionError(err error) bool {
	return IsMyError(err, ErrNoSession)
}

func IsTransportError(err error) bool {
	return IsMyError(err, ErrTransport)
}

func IsParseError(err error) bool {
	return IsMyError(err, ErrParse)
}

func IsAppNotFoundError(err error) bool {
	return IsMyError(err, ErrAppNotFound)
}
