package syscode

import (
	"context"
	"errors"
	"io/fs"
	"syscall"
)

// Error is the native error of this backend. It renders like a C library
// error: the attached text, if any, followed by the code's message.
type Error struct {
	code ErrorCode
	what string
}

func (e *Error) Error() string {
	msg := e.code.Message()
	if e.what == "" {
		return msg
	}
	return e.what + ": " + msg
}

// Code returns the identity e reports.
func (e *Error) Code() ErrorCode { return e.code }

// Unwrap exposes errno-category codes as syscall.Errno, so errors.Is works
// against fs.ErrNotExist and friends.
func (e *Error) Unwrap() error {
	if e.code.value == 0 || !isErrno(e.code.Category()) {
		return nil
	}
	return syscall.Errno(e.code.value)
}

// FromError returns the code err reports. SystemErrors and native Errors give
// back their own code; a syscall.Errno anywhere in the chain becomes a system
// category code; context and fs sentinel errors map to their Errc. Anything
// else is an IOError. Unless err is a bare errno, err.Error() is attached as
// the message.
func FromError(err error) Code {
	if err == nil {
		return Code{}
	}
	if c, ok := CodeOf(err); ok {
		return c
	}

	var native *Error
	if errors.As(err, &native) {
		return FromWithMessage(native.code, native.what)
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		c := New(int(errno), system)
		if err != error(errno) {
			c = c.WithMessage(err.Error())
		}
		return c
	}

	return FromEnumWithMessage(errcOf(err), err.Error())
}

func errcOf(err error) Errc {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return TimedOut
	case errors.Is(err, context.Canceled):
		return OperationCanceled
	case errors.Is(err, fs.ErrNotExist):
		return NoSuchFileOrDirectory
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrExist):
		return FileExists
	case errors.Is(err, fs.ErrInvalid):
		return InvalidArgument
	default:
		return IOError
	}
}
