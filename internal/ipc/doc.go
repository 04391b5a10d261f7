// Package ipc carries control traffic between the CLI and the daemon over
// a Unix domain socket using JSON-RPC.
package ipc
