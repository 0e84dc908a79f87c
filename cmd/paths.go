package cmd

import (
	"github.com/spf13/cobra"

	"devcontainer-init/internal/diagnostics"
	"devcontainer-init/internal/logger"
)

// pathsCmd prints the platform, environment and path normalization report.
// It never fails; problems are logged as warnings and the command still exits 0.
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print platform, environment variable and mount path diagnostics",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _, err := loadSettings()
		if err != nil {
			logger.Warn("[WARN] Using default settings: %v\n", err)
		}

		report := diagnostics.Collect(diagnostics.HostEnv(), cfg.CacheDir)
		if err := diagnostics.Write(cmd.OutOrStdout(), report); err != nil {
			logger.Warn("[WARN] Failed to write report: %v\n", err)
		}
	},
}
