// Package logging builds the slog loggers shared by the roster binaries.
//
// Setup turns a config.LoggingConfig into a *slog.Logger and installs it as
// the process default. Two formats are supported:
//
//   - "json": slog's JSONHandler, for log collectors
//   - "text": a colorized handler for terminals, with short timestamps and
//     level tags (DBG/INF/WRN/ERR)
//
// Components derive their own loggers with With("component", ...) so every
// line carries its origin.
package logging
