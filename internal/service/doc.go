// Package service provides the service registry for primecore providers.
//
// The registry maintains a catalog of service providers and handles
// discovery, tool lookup and tool execution.
//
// Discovery Algorithm:
//   - Keyword matching in name/description
//   - Capability and tool name matching
//   - Category bonus for exact matches
//   - Score-based ranking, ties broken by service ID
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(math.NewProvider(ops))
//	services := registry.Discover("factor a number", 5)
//	result, err := registry.Execute(ctx, "math.primeFactors", params, nil)
package service
