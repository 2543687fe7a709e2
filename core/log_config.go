package core

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// init initializes the logging configuration based on the DEBUG_QUADSOLVE environment variable.
// It sets the global logging level to Disabled, Debug, or Info based on the value of DEBUG_QUADSOLVE.
func init() {
	ConfigureLogging(os.Getenv("DEBUG_QUADSOLVE"))
}

// ConfigureLogging sets the global zerolog level from a DEBUG_QUADSOLVE style value.
func ConfigureLogging(value string) {
	debugMode := strings.TrimSpace(strings.ToLower(value))

	if debugMode == "off" || debugMode == "0" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	} else if debugMode == "full" {
		// Per-quad matching is only visible at debug level.
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
