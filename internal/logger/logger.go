package logger

import (
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs informational messages in green color.
// Green is typically used for success or normal info to catch user attention pleasantly.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Magenta is bright and stands out, signaling caution without being too alarming.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// errorf writes red output to an arbitrary writer; Error binds it to stderr
// because zdq's usage and failure lines belong on the error stream.
var errorf = color.New(color.FgRed).FprintfFunc()

// Error logs error messages in red color to standard error.
func Error(format string, a ...any) {
	errorf(os.Stderr, format, a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It defaults to the no-op so packages can log before Init runs; Init swaps
// in the real printer when debug output is requested via ZDQ_DEBUG.
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// Parameters:
// - enableDebug: boolean flag to turn debug messages on or off.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug stays a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		// Assign Debug to print cyan-colored debug messages.
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
