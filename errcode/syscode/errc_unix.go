//go:build unix

package syscode

import (
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

// String returns the symbolic errno name, such as "ENOENT".
func (e Errc) String() string {
	if name := unix.ErrnoName(syscall.Errno(e)); name != "" {
		return name
	}
	return "Errc(" + strconv.Itoa(int(e)) + ")"
}
