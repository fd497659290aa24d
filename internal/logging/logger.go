// Package logging builds the zap loggers used by the CLI and the API client.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger. With verbose=true the level drops to
// debug, which also enables per-request transport logging.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	// CLI output goes to stdout; logs stay on stderr.
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}
