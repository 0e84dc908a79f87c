// Package platform identifies the host as Windows or Unix-like.
package platform

import (
	"runtime"
	"sync"
)

// Platform is the host family a companion script is selected for.
type Platform int

const (
	// Unix covers Linux, macOS and every other non-Windows GOOS.
	Unix Platform = iota
	Windows
)

// String returns a readable name for the platform.
func (p Platform) String() string {
	if p == Windows {
		return "windows"
	}
	return "unix"
}

// FromGOOS maps a GOOS value to a Platform.
func FromGOOS(goos string) Platform {
	if goos == "windows" {
		return Windows
	}
	return Unix
}

var current = sync.OnceValue(func() Platform {
	return FromGOOS(runtime.GOOS)
})

// Current returns the platform of the running process. It is resolved once.
func Current() Platform {
	return current()
}

// Name returns the raw operating system name (GOOS) of the running process.
func Name() string {
	return runtime.GOOS
}

// OSType returns the operating system name as reported by the kernel,
// e.g. "Linux" or "Darwin", and "Windows_NT" on Windows.
func OSType() string {
	return osType()
}
