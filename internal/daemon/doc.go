// Package daemon hosts the long-running reel process: it owns the catalog
// store, the stage services, the HTTP API, and the single-instance lock.
package daemon
