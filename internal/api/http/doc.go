// Package http provides the gin handlers of the primecore REST API.
//
// Routes:
//   - GET  /                   liveness
//   - GET  /health             registry statistics and uptime
//   - GET  /services           service definitions, optionally by ?category=
//   - POST /services/discover  rank services against a free-text message
//   - POST /services/execute   run a tool: {"tool_id", "params", "client_id"}
//   - GET  /primes/:n          shortcut for math.isPrime
//   - GET  /factors/:n         shortcut for math.primeFactors
//   - GET  /stats              JSON digest of the service metrics
//
// Integers are carried as JSON numbers of any size. Request bodies must be
// decoded with UseNumber so large values survive; the server enables it for
// gin's binding globally.
package http
