package dispatch

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Runner starts a prepared command and waits for it to finish.
type Runner interface {
	Run(cmd *exec.Cmd) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

// commandLine renders args as a single shell-quoted line for logging.
func commandLine(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			q = arg
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " ")
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved. It is the default location of the companion scripts.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
