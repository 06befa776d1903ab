// Package main is the entry point for the MathSearch backend server.
//
// The server exposes the expression evaluator and the pattern solver over
// REST and a WebSocket stream, with Prometheus metrics on /metrics.
//
// Configuration is layered: defaults, then an optional TOML file, then
// environment variables, then CLI flags.
//
// Usage:
//
//	./server -port 8000
//	./server -dev -config mathsearch.toml
//
// SIGINT and SIGTERM trigger a graceful shutdown.
package main
