package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "init.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "unix_script: setup.sh\ncache_dir: .cache\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "setup.sh", cfg.UnixScript)
	assert.Equal(t, ".cache", cfg.CacheDir)
	assert.Equal(t, DefaultWindowsScript, cfg.WindowsScript)
	assert.Equal(t, DefaultPowerShell, cfg.PowerShell)
	assert.Equal(t, []string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-File"}, cfg.PowerShellArgs)
	assert.Equal(t, os.FileMode(0o755), cfg.ScriptMode.Perm())
}

func TestLoadConfigOverridesEverything(t *testing.T) {
	path := writeConfig(t, `
windows_script: bootstrap.ps1
unix_script: bootstrap.sh
powershell: pwsh
powershell_args: ["-NoLogo", "-File"]
script_mode: 0o700
cache_dir: .run-cache
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		WindowsScript:  "bootstrap.ps1",
		UnixScript:     "bootstrap.sh",
		PowerShell:     "pwsh",
		PowerShellArgs: []string{"-NoLogo", "-File"},
		ScriptMode:     0o700,
		CacheDir:       ".run-cache",
	}, cfg)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "unix_script: [unterminated\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
}
