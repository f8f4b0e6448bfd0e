// Package server runs the HTTP and gRPC listeners of the ledger server and
// shuts them down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
