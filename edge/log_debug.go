//go:build debug

package edge

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[edge DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages if the build tag debug is set.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
