// Package server wires configuration, logging, metrics, tracing, the math
// provider and the HTTP and WebSocket surfaces into one http.Server.
//
// Middleware order: recovery, tracing, metrics, CORS, body limit, rate limit.
package server
