// Package logging builds slog loggers for the daemon and CLI.
//
// Two handler formats are supported: a human-oriented console handler that
// prints single-line records with optional ANSI color when attached to a
// terminal, and a JSON handler for machine consumption. Helpers mirror the
// slog attribute constructors so call sites stay terse, and WithContext
// augments a logger with record/stage/correlation fields carried on the
// request context.
package logging
