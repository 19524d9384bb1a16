package types

// DiscoverRequest represents a service discovery request
type DiscoverRequest struct {
	Message string `json:"message" binding:"required"`
}

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID   string                 `json:"tool_id" binding:"required"`
	Params   map[string]interface{} `json:"params" binding:"required"`
	ClientID *string                `json:"client_id,omitempty"`
}

// StreamRequest is a message received on the streaming socket.
// Type is "execute", "list" or "ping". List requests name a list tool and
// have its items delivered in chunks of ChunkSize.
type StreamRequest struct {
	Type      string                 `json:"type"`
	ToolID    string                 `json:"tool_id,omitempty"`
	Params    map[string]interface{} `json:"params,omitempty"`
	ChunkSize int                    `json:"chunk_size,omitempty"`
}

// StreamEvent is a message sent on the streaming socket
type StreamEvent struct {
	Type      string                 `json:"type"`
	StreamID  string                 `json:"stream_id,omitempty"`
	ToolID    string                 `json:"tool_id,omitempty"`
	Items     []interface{}          `json:"items,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Message   string                 `json:"message,omitempty"`
	ErrorKind string                 `json:"error_kind,omitempty"`
	Timestamp int64                  `json:"timestamp"`
}
