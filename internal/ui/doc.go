// Package ui provides terminal output components for the storeadmin CLI.
//
// These are the non-interactive pieces: a Header for the form heading,
// an alert box for the public API URL, a Toaster that prints notifications
// as they arrive, and a typed-phrase confirmation gate for destructive
// commands. The interactive form lives in package tui and reuses the
// palette defined here.
//
// # Logging Integration
//
// Zap logging is silent unless STOREADMIN_LOG_LEVEL is set and writes to
// stderr, so the output here stays clean on stdout.
package ui
