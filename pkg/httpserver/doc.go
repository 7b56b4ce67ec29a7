// Package httpserver provides a thin wrapper around net/http.Server with
// environment-driven configuration, functional options, graceful shutdown on
// SIGINT/SIGTERM or context cancellation, and probe handlers for container
// orchestration.
package httpserver
