package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"devcontainer-init/internal/logger"
)

// LoadConfig reads the dispatcher config YAML file at configFile.
// A missing file is not an error: the defaults are returned instead.
// Fields left empty in the file keep their default values.
func LoadConfig(configFile string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("[DEBUG] No config file at %s, using defaults\n", configFile)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}
	logger.Debug("[DEBUG] Loaded config from %s\n", configFile)

	cfg.merge(fileCfg)
	return cfg, nil
}

// merge overlays the non-zero fields of other onto c.
func (c *Config) merge(other Config) {
	if other.WindowsScript != "" {
		c.WindowsScript = other.WindowsScript
	}
	if other.UnixScript != "" {
		c.UnixScript = other.UnixScript
	}
	if other.PowerShell != "" {
		c.PowerShell = other.PowerShell
	}
	if len(other.PowerShellArgs) > 0 {
		c.PowerShellArgs = other.PowerShellArgs
	}
	if other.ScriptMode != 0 {
		c.ScriptMode = other.ScriptMode
	}
	if other.CacheDir != "" {
		c.CacheDir = other.CacheDir
	}
}
