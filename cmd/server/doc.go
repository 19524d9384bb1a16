// Package main is the entry point for the primecore server.
//
// The server exposes the number theory toolset over HTTP and WebSocket:
//   - REST tool discovery and execution (/services, /services/execute)
//   - Shortcuts for the common queries (/primes/:n, /factors/:n)
//   - Chunked result streaming over WebSocket (/stream)
//   - Prometheus metrics (/metrics) and a JSON summary (/stats)
//
// Configuration:
//   - Environment variables (12-factor, see internal/infrastructure/config)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (console logs, debug level)
//	./server -dev
//
//	# Larger trial table and two extra random witnesses
//	ENGINE_TRIAL_BOUND=10000000 ENGINE_RANDOM_BASES=2 ./server
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
