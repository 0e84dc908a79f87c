//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package platform

import "runtime"

func osType() string {
	return runtime.GOOS
}
