// Package catalog persists pipeline records in SQLite and exposes typed
// accessors for the four stores: facts, scripts, videos, and published
// records.
//
// All four stores are append-only. Identifiers are assigned by SQLite
// AUTOINCREMENT, so they are strictly increasing and never reused, even
// after a conceptual deletion (which the current feature set does not
// perform). Downstream records hold foreign ids into upstream stores and
// never mutate upstream rows; foreign keys are enforced by the database.
//
// Treat this package as the single source of truth for record semantics;
// when you add fields, update schema.sql and bump schemaVersion.
package catalog
