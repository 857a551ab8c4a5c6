// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both unattended runs (JSON lines picked up
// by the orchestrator) and interactive use (colored console output).
//
// # Run Correlation
//
// WithRunID attaches a random run_id (UUID) to the logger so that every line emitted
// during one sync run, across all batches, can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log, runID := logger.WithRunID(log)
//	log.Info("Sync started", zap.String("source", src))
package logger
