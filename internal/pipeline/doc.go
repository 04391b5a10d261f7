// Package pipeline sequences the four content stages for single-shot
// "run everything" requests: generate facts, script them, assemble videos,
// and optionally publish. It is pure coordination; each stage's partial
// results are propagated to the caller, never hidden or retried.
package pipeline
