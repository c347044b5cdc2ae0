//go:build !unix

package syscode

import "strconv"

// errcNames covers the named Errc constants where x/sys/unix has no errno
// table, so ParseErrc keeps accepting them.
var errcNames = map[Errc]string{
	OperationNotPermitted: "EPERM",
	NoSuchFileOrDirectory: "ENOENT",
	Interrupted:           "EINTR",
	IOError:               "EIO",
	ResourceUnavailable:   "EAGAIN",
	PermissionDenied:      "EACCES",
	DeviceOrResourceBusy:  "EBUSY",
	FileExists:            "EEXIST",
	InvalidArgument:       "EINVAL",
	NoSpaceOnDevice:       "ENOSPC",
	BrokenPipe:            "EPIPE",
	FunctionNotSupported:  "ENOSYS",
	AddressInUse:          "EADDRINUSE",
	ConnectionRefused:     "ECONNREFUSED",
	ConnectionReset:       "ECONNRESET",
	TimedOut:              "ETIMEDOUT",
	OperationCanceled:     "ECANCELED",
}

func (e Errc) String() string {
	if name, ok := errcNames[e]; ok {
		return name
	}
	return "Errc(" + strconv.Itoa(int(e)) + ")"
}
