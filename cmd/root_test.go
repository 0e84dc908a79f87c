package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devcontainer-init/internal/dispatch"
	"devcontainer-init/internal/logger"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	logger.SetOutput(&out, &errOut)
	t.Cleanup(func() {
		logger.SetOutput(os.Stdout, os.Stderr)
		configPath, scriptDir, debug = "", "", false
	})

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPathsCommandPrintsReport(t *testing.T) {
	stdout, _, err := execute(t, "paths", "--script-dir", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, stdout, "Platform Information:")
	assert.Contains(t, stdout, "Platform: "+runtime.GOOS)
	assert.Contains(t, stdout, "POSIX: C:/Users/test/project")
	assert.Contains(t, stdout, "Docker Mount Path Examples:")
}

func TestPathsCommandIgnoresBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "init.yaml"), []byte("cache_dir: [oops\n"), 0o644))

	stdout, stderr, err := execute(t, "paths", "--script-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Using default settings")
	assert.Contains(t, stdout, ".docker-run-cache")
}

func TestRootReportsMissingScript(t *testing.T) {
	chdir(t, t.TempDir())
	root := t.TempDir()
	dir := filepath.Join(root, ".devcontainer")
	require.NoError(t, os.Mkdir(dir, 0o755))

	_, stderr, err := execute(t, "--script-dir", dir)

	var missing *dispatch.MissingScriptError
	require.ErrorAs(t, err, &missing)
	assert.True(t, reported(err))
	assert.Contains(t, stderr, "script not found: "+missing.Path)
}

func TestRootRunsConfiguredScript(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on Windows")
	}
	chdir(t, t.TempDir())
	root := t.TempDir()
	dir := filepath.Join(root, ".devcontainer")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "init.yaml"), []byte("unix_script: setup.sh\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "setup.sh"), []byte("#!/bin/sh\nexit 0\n"), 0o644))

	stdout, _, err := execute(t, "--script-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Initialization completed successfully")
}

func TestRootRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "unexpected")
	require.Error(t, err)
	assert.False(t, reported(err))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
