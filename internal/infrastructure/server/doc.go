// Package server assembles the primecore HTTP service: it builds the shared
// number theory instances from configuration, registers the math provider,
// installs the middleware chain (recovery, tracing, metrics, access log,
// CORS, rate limiting) and mounts the REST, metrics and WebSocket routes
// behind gzip compression.
package server
