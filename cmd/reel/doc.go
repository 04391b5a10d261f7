// Command reel is the CLI front end for the reeld daemon. It talks to the
// daemon over the IPC socket and renders pipeline records for the terminal.
package main
