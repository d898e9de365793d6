// Package server owns the process lifecycle of the HTTP transport: binding
// the listener, running it in the background, and shutting it down gracefully
// on SIGINT/SIGTERM/SIGQUIT.
package server
