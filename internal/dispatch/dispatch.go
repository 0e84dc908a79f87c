// Package dispatch runs the platform-specific companion initialization
// script: init.ps1 through PowerShell on Windows, init.sh everywhere else.
package dispatch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"devcontainer-init/internal/config"
	"devcontainer-init/internal/logger"
	"devcontainer-init/internal/platform"
)

// Dispatcher selects and runs the companion script for one platform.
// The script directory's parent is the workspace root the script runs in.
type Dispatcher struct {
	Platform  platform.Platform
	ScriptDir string
	Config    config.Config

	// Runner launches the script; Chmod marks the Unix script executable.
	Runner Runner
	Chmod  func(name string, mode os.FileMode) error

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Dispatcher for the current platform that inherits the
// process's standard streams.
func New(scriptDir string, cfg config.Config) *Dispatcher {
	return &Dispatcher{
		Platform:  platform.Current(),
		ScriptDir: scriptDir,
		Config:    cfg,
		Runner:    ExecRunner{},
		Chmod:     os.Chmod,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// ScriptPath returns the companion script for d.Platform. Only one path is
// ever selected; the other platform's script is not looked at.
func (d *Dispatcher) ScriptPath() string {
	if d.Platform == platform.Windows {
		return filepath.Join(d.ScriptDir, d.Config.WindowsScript)
	}
	return filepath.Join(d.ScriptDir, d.Config.UnixScript)
}

// WorkspaceRoot returns the directory one level above the script directory.
func (d *Dispatcher) WorkspaceRoot() string {
	return filepath.Dir(d.ScriptDir)
}

// Run changes into the workspace root and runs the companion script.
// It returns *MissingScriptError or *SubprocessError on failure.
func (d *Dispatcher) Run() error {
	scriptDir, err := filepath.Abs(d.ScriptDir)
	if err != nil {
		return fmt.Errorf("failed to resolve script directory %s: %w", d.ScriptDir, err)
	}
	d.ScriptDir = scriptDir

	root := d.WorkspaceRoot()
	logger.Debug("[DEBUG] Changing to workspace root %s\n", root)
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("failed to change to workspace root %s: %w", root, err)
	}

	script := d.ScriptPath()
	if d.Platform == platform.Windows {
		logger.Info("[INFO] Detected Windows environment\n")
		if !exists(script) {
			logger.Error("[ERROR] PowerShell script not found: %s\n", script)
			return &MissingScriptError{Path: script}
		}
	} else {
		logger.Info("[INFO] Detected Unix/Linux environment\n")
		if !exists(script) {
			logger.Error("[ERROR] Shell script not found: %s\n", script)
			return &MissingScriptError{Path: script}
		}

		// Executability is best-effort: the script may still be runnable.
		if err := d.Chmod(script, d.Config.ScriptMode.Perm()); err != nil {
			logger.Warn("[WARN] Could not set execute permission on %s: %v\n", filepath.Base(script), err)
		}
	}

	if err := d.runScript(script); err != nil {
		return err
	}

	logger.Info("[INFO] Initialization completed successfully\n")
	return nil
}

// runScript builds the platform command for script and runs it with the
// dispatcher's streams attached.
func (d *Dispatcher) runScript(script string) error {
	cmd := d.command(script)
	cmd.Stdin = d.Stdin
	cmd.Stdout = d.Stdout
	cmd.Stderr = d.Stderr

	line := commandLine(cmd.Args)
	logger.Info("[INFO] Running: %s\n", line)

	if err := d.Runner.Run(cmd); err != nil {
		logger.Error("[ERROR] Failed to run command: %s\n", line)
		logger.Error("[ERROR] %v\n", err)

		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &SubprocessError{Command: line, ExitCode: code, Err: err}
	}
	return nil
}

func (d *Dispatcher) command(script string) *exec.Cmd {
	if d.Platform == platform.Windows {
		args := append(slices.Clone(d.Config.PowerShellArgs), script)
		return exec.Command(d.Config.PowerShell, args...)
	}
	return exec.Command(script)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
