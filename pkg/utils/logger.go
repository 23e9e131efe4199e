package utils

import "go.uber.org/zap"

// NewLogger builds the process logger. Debug mode gives the human-readable
// development config at debug level for tracing extraction and retrieval;
// otherwise JSON at info level.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
