package logger

import (
	"io"
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colors for each log level. Info and Debug are written to stdout,
// Warn and Error to stderr so failures stay visible when stdout is piped.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	debugEnabled bool
)

// Info logs informational messages in green color.
// Green is used for progress and success lines, e.g. "Initialization completed successfully".
func Info(format string, a ...any) {
	_, _ = infoColor.Fprintf(stdout, format, a...)
}

// Warn logs warning messages in bright magenta color.
// Warnings never stop execution; they flag best-effort steps that did not work out.
func Warn(format string, a ...any) {
	_, _ = warnColor.Fprintf(stderr, format, a...)
}

// Error logs error messages in red color.
func Error(format string, a ...any) {
	_, _ = errorColor.Fprintf(stderr, format, a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
func Debug(format string, a ...any) {
	if !debugEnabled {
		return
	}
	_, _ = debugColor.Fprintf(stdout, format, a...)
}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// Parameters:
// - enableDebug: boolean flag to turn debug messages on or off.
func Init(enableDebug bool) {
	debugEnabled = enableDebug
}

// SetOutput redirects the info/debug stream and the warn/error stream.
// A nil writer leaves the corresponding stream unchanged.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}
