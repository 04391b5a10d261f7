// Package api defines transport-friendly representations of catalog
// records and the converters between them. The HTTP server and the IPC
// surface both speak these types so CLI and web clients see one shape.
package api
