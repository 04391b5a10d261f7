// Package services defines shared utilities consumed by the pipeline
// components and external collaborator integrations.
//
// Key responsibilities:
//   - Context helpers that stamp record IDs, component names, and correlation
//     identifiers for logging and tracing.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification (validation vs not-found vs collaborator failure)
//     uniform across components.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays consistent across the codebase.
package services
