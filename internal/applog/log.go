// Package applog constructs the zap logger used by the chessgame CLI.
package applog

import "go.uber.org/zap"

// New builds a production-style zap logger, or a development logger with
// human-readable output when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewNop returns a logger that discards everything, for tests and library
// callers that have not opted into logging.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
