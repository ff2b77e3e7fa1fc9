package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMissingField      = errors.New("missing expected field")
	ErrUnexpectedStatus  = errors.New("unexpected http status")
	ErrNoGroup           = errors.New("no group to post to")
	ErrComicDoesNotExist = errors.New("comic does not exist")
)

// Stage codes attached to workflow errors
const (
	CodeFetchComic   = "fetch_comic"
	CodeResolveGroup = "resolve_group"
	CodeUploadServer = "upload_server"
	CodeUploadPhoto  = "upload_photo"
	CodeSavePhoto    = "save_photo"
	CodeWallPost     = "wall_post"
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MissingField reports an expected field absent from a decoded response
func MissingField(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

// UnexpectedStatus reports a non-success http status
func UnexpectedStatus(method, url string, status int) error {
	return fmt.Errorf("%w: %s %s returned %d", ErrUnexpectedStatus, method, url, status)
}

// GetCode returns the code of the outermost coded error, if any
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the message of the outermost wrapped error, or the
// error text when err was not wrapped
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsMissingField returns true if a response lacked an expected field
func IsMissingField(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// IsUnexpectedStatus returns true if a call returned a non-success status
func IsUnexpectedStatus(err error) bool {
	return errors.Is(err, ErrUnexpectedStatus)
}
