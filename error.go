package bee

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EFORMAT      = "format"
	EEMPTY       = "empty"
	ENOTFOUND    = "not_found"
	EPERMISSION  = "permission"
	EAPI         = "api"
	EUNSUPPORTED = "unsupported"
	EINVALID     = "invalid"
	EINTERNAL    = "internal"
)

// ErrInterrupt is returned by a LineReader when the user abandons the
// current line (Ctrl-C).
var ErrInterrupt = errors.New("interrupt")

// Error represents an application-specific error. Source names the file or
// query the error relates to, if any.
type Error struct {
	Code    string
	Source  string
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("bee error: code=%s source=%s message=%s", e.Code, e.Source, e.Message)
	}
	return fmt.Sprintf("bee error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// SourceErrorf returns an Error attributed to the given source identifier.
func SourceErrorf(code, source string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Source:  source,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return the underlying error text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ErrorSource unwraps an application error and returns its source identifier.
func ErrorSource(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Source
	}
	return ""
}
