//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func osType() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS
	}
	return unix.ByteSliceToString(uts.Sysname[:])
}
