package main

import (
	"devcontainer-init/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// devcontainer-init prepares a workspace for a devcontainer on any host:
//   - Without arguments it detects the host OS and runs the companion script that sits next to
//     the binary (init.ps1 through PowerShell on Windows, init.sh elsewhere) from the workspace root
//   - `devcontainer-init paths` prints platform, environment variable and path normalization
//     details used to debug container mount configuration
//
// Error handling strategy:
//   - A missing companion script or a failing script stops the run with exit status 1
//   - Failing to mark init.sh executable is only a warning; the run continues
func main() {
	cmd.Execute()
}
