package syscode

import "syscall"

// Errc enumerates portable error conditions. Values are the platform's errno
// numbers and live in the generic category. Errc is registered both as a code
// enum and as a condition enum.
type Errc int

const (
	OperationNotPermitted = Errc(syscall.EPERM)
	NoSuchFileOrDirectory = Errc(syscall.ENOENT)
	Interrupted           = Errc(syscall.EINTR)
	IOError               = Errc(syscall.EIO)
	ResourceUnavailable   = Errc(syscall.EAGAIN)
	PermissionDenied      = Errc(syscall.EACCES)
	DeviceOrResourceBusy  = Errc(syscall.EBUSY)
	FileExists            = Errc(syscall.EEXIST)
	InvalidArgument       = Errc(syscall.EINVAL)
	NoSpaceOnDevice       = Errc(syscall.ENOSPC)
	BrokenPipe            = Errc(syscall.EPIPE)
	FunctionNotSupported  = Errc(syscall.ENOSYS)
	AddressInUse          = Errc(syscall.EADDRINUSE)
	ConnectionRefused     = Errc(syscall.ECONNREFUSED)
	ConnectionReset       = Errc(syscall.ECONNRESET)
	TimedOut              = Errc(syscall.ETIMEDOUT)
	OperationCanceled     = Errc(syscall.ECANCELED)
)

// ErrorCode converts e into a code of the generic category.
func (e Errc) ErrorCode() ErrorCode {
	return ErrorCode{value: int(e), cat: generic}
}

// ErrorCondition converts e into a condition of the generic category.
func (e Errc) ErrorCondition() Condition {
	return Condition{value: int(e), cat: generic}
}

var allErrc = []Errc{
	OperationNotPermitted, NoSuchFileOrDirectory, Interrupted, IOError,
	ResourceUnavailable, PermissionDenied, DeviceOrResourceBusy, FileExists,
	InvalidArgument, NoSpaceOnDevice, BrokenPipe, FunctionNotSupported,
	AddressInUse, ConnectionRefused, ConnectionReset, TimedOut, OperationCanceled,
}

// ParseErrc returns the Errc whose String is name, such as "ENOENT".
func ParseErrc(name string) (Errc, bool) {
	for _, e := range allErrc {
		if e.String() == name {
			return e, true
		}
	}
	return 0, false
}
