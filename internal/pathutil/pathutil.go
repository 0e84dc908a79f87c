// Package pathutil holds the path transformations shown by the diagnostics
// report: host normalization, forward-slash conversion and container mount
// path translation.
package pathutil

import (
	"path/filepath"
	"regexp"
	"strings"

	"devcontainer-init/internal/platform"
)

var driveLetter = regexp.MustCompile(`^([A-Z]):`)

// Normalize cleans p using the host's path rules. On Windows forward
// slashes become backslashes; elsewhere backslashes are ordinary characters.
func Normalize(p string) string {
	return filepath.Clean(p)
}

// ToPosix replaces every backslash in p with a forward slash.
func ToPosix(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// MountSource joins the workspace folder, cache directory and home directory
// into the host side of a container bind mount.
func MountSource(workspace, cacheDir, home string) string {
	return filepath.Join(workspace, cacheDir, home)
}

// MountTarget translates a home directory into the container side of a bind
// mount. On Windows, C:\Users\me becomes /C/Users/me; other platforms use home as is.
func MountTarget(home string, p platform.Platform) string {
	if p != platform.Windows {
		return home
	}
	return driveLetter.ReplaceAllString(ToPosix(home), "/$1")
}
