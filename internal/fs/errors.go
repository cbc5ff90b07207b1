package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
)

// ErrorKind is the closed set of failure categories. The values double
// as stable wire codes; clients branch on these, never on messages.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindPermissionDenied ErrorKind = "PERMISSION_DENIED"
	KindAlreadyExists    ErrorKind = "ALREADY_EXISTS"
	KindInvalidPath      ErrorKind = "INVALID_PATH"
	KindIOError          ErrorKind = "IO_ERROR"
	KindUnknown          ErrorKind = "UNKNOWN_ERROR"
)

// Error is the service's error type. Detail is present only for the
// IO_ERROR and UNKNOWN_ERROR kinds; the fixed kinds carry a canonical
// message.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return "file or directory not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindAlreadyExists:
		return "file or directory already exists"
	case KindInvalidPath:
		return "invalid path"
	case KindIOError:
		return fmt.Sprintf("io error: %s", e.Detail)
	default:
		return fmt.Sprintf("unknown error: %s", e.Detail)
	}
}

func notFound() *Error         { return &Error{Kind: KindNotFound} }
func permissionDenied() *Error { return &Error{Kind: KindPermissionDenied} }
func alreadyExists() *Error    { return &Error{Kind: KindAlreadyExists} }
func invalidPath() *Error      { return &Error{Kind: KindInvalidPath} }

func ioError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindIOError, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind from err. The second return is false
// when err did not originate from this package.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// classify maps an OS-level error into the taxonomy using the io/fs
// sentinel errors. Anything unrecognized becomes an IO_ERROR carrying
// the context string and the underlying message.
func classify(err error, context string) *Error {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return notFound()
	case errors.Is(err, iofs.ErrPermission):
		return permissionDenied()
	case errors.Is(err, iofs.ErrExist):
		return alreadyExists()
	default:
		return ioError("%s: %v", context, err)
	}
}
