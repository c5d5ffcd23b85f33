// Package logging provides structured logging for storeadmin.
//
// This package wraps a package-level zap logger with convenience functions.
// Output goes to stderr so it never interleaves with the terminal UI on
// stdout.
//
// # Log Levels
//
//   - Debug: request/response traces, form state transitions
//   - Info: completed actions (billboard saved, billboard deleted)
//   - Warn: non-2xx responses
//   - Error: failed actions that were turned into notifications
//
// # Configuration
//
// Logging is silent unless STOREADMIN_LOG_LEVEL is set:
//
//	STOREADMIN_LOG_LEVEL=debug storeadmin update --store 42 --label "Summer sale"
//
// Commands call InitializeFromEnv once at startup and Sync before exit.
//
// # Structured Logging
//
//	logging.Info("Billboard saved",
//	    zap.String("store_id", storeID),
//	    zap.String("label", values.Label),
//	)
package logging
