// Package server owns the process lifecycle of the inbound transport: it
// starts the HTTP listener and shuts it down gracefully on SIGINT, SIGTERM
// or SIGQUIT.
package server
