// Package types provides shared data structures for the primecore backend.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool definition
//   - Context: Execution context for operations
//   - Result: Standard operation result (success or typed error)
//
// Request Types:
//   - DiscoverRequest: Service discovery
//   - ExecuteRequest: Service tool execution
//   - StreamRequest, StreamEvent: WebSocket communication
//
// Integers inside Params and Result.Data travel as json.Number decimal
// literals so that values above 2^53 keep every digit.
//
// Example Usage:
//
//	result := &types.Result{
//	    Success: true,
//	    Data:    map[string]interface{}{"prime": true},
//	}
package types
