// Package ws streams tool results over WebSocket.
//
// List tools can produce millions of values; a "list" request delivers the
// result array in chunks so clients can render it incrementally.
//
// Message Types (Client → Server):
//   - execute: {"type":"execute","tool_id":..,"params":{..}} runs one tool
//   - list: same fields plus "chunk_size" (default 1000, at most 10000)
//   - ping: keep-alive
//
// Message Types (Server → Client):
//   - system: sent on connect; stream_id is the connection ID
//   - result: the data of an execute request
//   - stream_start, items, complete: one list stream; complete carries the
//     result fields other than the list itself
//   - pong
//   - error: message and error_kind
//
// Example Usage:
//
//	handler := ws.NewHandler(registry, metrics, logger)
//	router.GET("/stream", handler.HandleConnection)
package ws
