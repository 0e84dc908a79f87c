package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"devcontainer-init/internal/config"
	"devcontainer-init/internal/dispatch"
	"devcontainer-init/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath overrides the YAML config location; empty means init.yaml in the script directory.
var configPath string

// scriptDir overrides the directory holding the companion scripts.
// By default it is the directory of the running binary.
var scriptDir string

// rootCmd runs the companion initialization script for the host platform.
var rootCmd = &cobra.Command{
	Use:   "devcontainer-init",
	Short: "Run the platform-specific devcontainer initialization script",
	Long: `Detects the host operating system and runs the matching companion script
from the script directory: init.ps1 through PowerShell on Windows, init.sh elsewhere.
The script runs from the workspace root, the parent of the script directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, dir, err := loadSettings()
		if err != nil {
			return err
		}
		return dispatch.New(dir, cfg).Run()
	},
}

// loadSettings resolves the script directory and loads the config that sits next to it.
func loadSettings() (config.Config, string, error) {
	dir := scriptDir
	if dir == "" {
		exeDir, err := dispatch.ExecutableDir()
		if err != nil {
			return config.Default(), "", err
		}
		dir = exeDir
	}

	path := configPath
	if path == "" {
		path = filepath.Join(dir, "init.yaml")
	}
	cfg, err := config.LoadConfig(path)
	return cfg, dir, err
}

// reported tells whether err was already logged by the dispatcher.
func reported(err error) bool {
	var missing *dispatch.MissingScriptError
	var failed *dispatch.SubprocessError
	return errors.As(err, &missing) || errors.As(err, &failed)
}

// Execute runs the root command and exits with status 1 on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !reported(err) {
			logger.Error("[ERROR] %v\n", err)
		}
		os.Exit(1)
	}
}

// init sets up global CLI flags and registers subcommands.
func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default <script-dir>/init.yaml)")
	rootCmd.PersistentFlags().StringVar(&scriptDir, "script-dir", "", "Directory holding the companion scripts (default: directory of this binary)")

	rootCmd.AddCommand(pathsCmd)
}
