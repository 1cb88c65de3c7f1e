package ip

import (
	"errors"
	"fmt"
	"syscall"
)

// Kind is the host-level classification of a plugin failure.
type Kind int

const (
	KindNone Kind = iota
	KindErrno
	KindUnrecognizedFileType
	KindUnsupportedFileType
	KindFunctionNotSupported
	KindNotOption
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "success"
	case KindErrno:
		return "system error"
	case KindUnrecognizedFileType:
		return "unrecognized filename extension"
	case KindUnsupportedFileType:
		return "unsupported file format"
	case KindFunctionNotSupported:
		return "function not supported"
	case KindNotOption:
		return "not an option"
	case KindInternal:
		return "internal error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by every Plugin and Stream operation that fails.
// Errno is set for KindErrno; Err carries the backend cause, if any.
type Error struct {
	Kind  Kind
	Errno syscall.Errno
	Err   error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindErrno && e.Errno != 0:
		return e.Errno.Error()
	case e.Err != nil:
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	if e.Errno != 0 {
		return e.Errno
	}
	return e.Err
}

// Is matches another *Error of the same kind. A target with a zero Errno
// matches any errno.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Errno == 0 || t.Errno == e.Errno)
}

var (
	ErrUnrecognizedFileType = &Error{Kind: KindUnrecognizedFileType}
	ErrUnsupportedFileType  = &Error{Kind: KindUnsupportedFileType}
	ErrFunctionNotSupported = &Error{Kind: KindFunctionNotSupported}
	ErrNotOption            = &Error{Kind: KindNotOption}
	ErrInternal             = &Error{Kind: KindInternal}
)

// Errno wraps a system error code.
func Errno(code syscall.Errno) *Error {
	return &Error{Kind: KindErrno, Errno: code}
}

// Wrap classifies cause under kind.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// KindOf returns the kind of err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
