// Package diagnostics builds the human-readable path and environment report
// used to debug devcontainer mount configuration. The output has no stable
// machine-readable format.
package diagnostics

import (
	"os"
	"os/user"

	"devcontainer-init/internal/pathutil"
	"devcontainer-init/internal/platform"
)

// NotSet is printed for any value that is absent or could not be queried.
const NotSet = "not set"

// EnvNames are the environment variables listed in the report.
var EnvNames = []string{"HOME", "USERPROFILE", "USERNAME", "USER"}

// ExamplePaths are run through each path transformation.
var ExamplePaths = []string{
	`C:\Users\test\project`,
	"/home/user/project",
	`.docker-run-cache\home\user`,
	".docker-run-cache/home/user",
}

// Env is the ambient host information a report is collected from.
type Env struct {
	Platform platform.Platform
	GOOS     string
	OSType   string
	Getenv   func(string) string
	HomeDir  func() (string, error)
	Getwd    func() (string, error)
}

// HostEnv returns the Env of the running process.
func HostEnv() Env {
	return Env{
		Platform: platform.Current(),
		GOOS:     platform.Name(),
		OSType:   platform.OSType(),
		Getenv:   os.Getenv,
		HomeDir:  homeDir,
		Getwd:    os.Getwd,
	}
}

// homeDir prefers $HOME (%USERPROFILE% on Windows) and falls back to the
// user database.
func homeDir() (string, error) {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return usr.HomeDir, nil
}

// EnvVar is one environment variable line.
type EnvVar struct {
	Name  string
	Value string
}

// PathExample shows one input path and its transformations.
type PathExample struct {
	Original   string
	Normalized string
	Posix      string
}

// Variable is an editor template variable and what it resolves to.
type Variable struct {
	Template string
	Value    string
}

// Mount is an example container bind mount.
type Mount struct {
	Label  string // "Windows" or "Unix"
	Source string
	Target string
}

// Report is everything the diagnostics command prints.
type Report struct {
	Platform  string
	OSType    string
	Home      string
	Cwd       string
	Env       []EnvVar
	Paths     []PathExample
	Variables []Variable
	Mount     Mount
}

// Collect gathers a Report from env. It never fails: missing values are
// replaced by placeholders.
func Collect(env Env, cacheDir string) Report {
	home := valueOr(env.HomeDir, NotSet)
	cwd := valueOr(env.Getwd, NotSet)

	r := Report{
		Platform: env.GOOS,
		OSType:   env.OSType,
		Home:     home,
		Cwd:      cwd,
	}

	for _, name := range EnvNames {
		r.Env = append(r.Env, EnvVar{Name: name, Value: getenvOr(env, name, NotSet)})
	}

	for _, p := range ExamplePaths {
		r.Paths = append(r.Paths, PathExample{
			Original:   p,
			Normalized: pathutil.Normalize(p),
			Posix:      pathutil.ToPosix(p),
		})
	}

	r.Variables = []Variable{
		{Template: "${localWorkspaceFolder}", Value: cwd},
		{Template: "${localEnv:HOME}", Value: getenvOr(env, "HOME", "undefined on Windows")},
		{Template: "${localEnv:USERPROFILE}", Value: getenvOr(env, "USERPROFILE", "undefined on Unix")},
	}

	r.Mount = Mount{
		Label:  "Unix",
		Source: pathutil.MountSource(cwd, cacheDir, home),
		Target: pathutil.MountTarget(home, env.Platform),
	}
	if env.Platform == platform.Windows {
		r.Mount.Label = "Windows"
	}
	return r
}

func getenvOr(env Env, name, fallback string) string {
	if env.Getenv == nil {
		return fallback
	}
	if v := env.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func valueOr(fn func() (string, error), fallback string) string {
	if fn == nil {
		return fallback
	}
	v, err := fn()
	if err != nil || v == "" {
		return fallback
	}
	return v
}
