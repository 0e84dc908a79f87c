package config

import "os"

// Default values used when no config file is present or a field is left empty.
const (
	DefaultWindowsScript = "init.ps1"
	DefaultUnixScript    = "init.sh"
	DefaultPowerShell    = "powershell.exe"
	DefaultScriptMode    = 0o755
	DefaultCacheDir      = ".docker-run-cache"
)

// Config describes how the dispatcher finds and runs companion scripts
// and which cache directory the diagnostics mount examples use.
// - WindowsScript/UnixScript: companion script file names, relative to the script directory.
// - PowerShell/PowerShellArgs: interpreter used for the Windows script; the script path is appended last.
// - ScriptMode: permission bits applied to the Unix script before it is run.
// - CacheDir: directory name joined into the mount source example.
type Config struct {
	WindowsScript  string   `yaml:"windows_script"`
	UnixScript     string   `yaml:"unix_script"`
	PowerShell     string   `yaml:"powershell"`
	PowerShellArgs []string `yaml:"powershell_args"`
	ScriptMode     FileMode `yaml:"script_mode"`
	CacheDir       string   `yaml:"cache_dir"`
}

// FileMode is a permission value written in octal in YAML (e.g. 0o755).
type FileMode uint32

// Perm returns the mode as permission bits.
func (m FileMode) Perm() os.FileMode {
	return os.FileMode(m).Perm()
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		WindowsScript:  DefaultWindowsScript,
		UnixScript:     DefaultUnixScript,
		PowerShell:     DefaultPowerShell,
		PowerShellArgs: []string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-File"},
		ScriptMode:     DefaultScriptMode,
		CacheDir:       DefaultCacheDir,
	}
}
