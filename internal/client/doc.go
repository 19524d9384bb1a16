// Package client is the HTTP client primectl uses in remote mode.
//
// Calls go through a resty client with transport-level retries and a
// circuit breaker that only counts server-side failures. Tool errors such as
// invalid input come back as a types.Result and leave the breaker alone.
// Every call carries X-Trace-ID so server logs can be correlated with the
// command that issued it. Response bodies are decoded with json.Number so
// integers of any size survive the round trip.
package client
