// Package logging provides structured logging for the inline edit demo and
// widget packages.
//
// This package wraps a global zap logger. It is silent by default; set
// INLINEEDIT_LOG_LEVEL to one of debug, info, warn or error to enable output.
// Because the terminal UI draws on stdout, log lines go to stderr unless
// INLINEEDIT_LOG_FILE names a file:
//
//	INLINEEDIT_LOG_LEVEL=debug INLINEEDIT_LOG_FILE=/tmp/inlineedit.log inlineedit-demo
//
// # Log Levels
//
//   - Debug: listener registration, mode transitions
//   - Info: confirmed values
//   - Warn/Error: configuration problems
//
// # Structured Logging
//
//	logging.Debug("Listener added",
//	    zap.String("kind", "keydown"),
//	    zap.Int("count", 3),
//	)
package logging
