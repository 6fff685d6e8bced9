// Package steplog provides step-oriented console logging for the
// acceptance suites. Every workflow step announces itself before acting
// so that a failing run reads as a human narrative, not a stack trace.
package steplog

import (
	"os"

	"github.com/phuslu/log"
)

var logger = log.Logger{
	Level:      log.InfoLevel,
	TimeFormat: "15:04:05",
	Writer: &log.ConsoleWriter{
		ColorOutput:    true,
		EndWithMessage: true,
		Writer:         os.Stderr,
	},
}

// Step announces that a workflow step is about to run.
func Step(format string, args ...any) {
	logger.Info().Msgf("▶ "+format, args...)
}

// Info reports progress within a step.
func Info(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// Success reports a completed step.
func Success(format string, args ...any) {
	logger.Info().Msgf("✓ "+format, args...)
}

// Warn reports a non-fatal anomaly, such as a fallback path being taken.
func Warn(format string, args ...any) {
	logger.Warn().Msgf("⚠ "+format, args...)
}

// Failure reports a failed step together with its cause.
func Failure(err error, format string, args ...any) {
	logger.Error().Err(err).Msgf("✗ "+format, args...)
}
