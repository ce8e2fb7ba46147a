// Package core holds small types shared across the romanization engine's
// packages, starting with a uniform error representation.
package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes for engine construction failures. Romanize itself never
// returns an error (see engine.New); only New can fail.
const (
	NOERROR   int = 0
	EDATA     int = 120 // embedded descriptor or rule data is malformed
	EINVALID  int = 121 // invalid construction argument (bad option)
	EINTERNAL int = 122 // internal invariant violated
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EDATA:
		return "malformed embedded data"
	case EINVALID:
		return "invalid argument"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// WrapError wraps an error in a coreError, adding an error code and a
// user-facing message. If err is nil, an error carrying code's standard
// text is synthesized so the wrapper is still usable.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with err, or EINTERNAL if none
// is found. A nil err yields NOERROR.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// Error creates an error carrying an error code and a formatted message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// Fatal prints a construction error to stderr and exits the process.
// Construction errors are terminal per the engine's error-handling policy.
func Fatal(err error) {
	if err == nil {
		return
	}
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		os.Exit(e.ErrorCode())
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
	os.Exit(EINTERNAL)
}
