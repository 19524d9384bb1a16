package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/primecore/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/primecore/internal/service"
	"github.com/GriffinCanCode/primecore/internal/shared/id"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
	"github.com/GriffinCanCode/primecore/internal/shared/utils"
)

// Chunking limits for list streams
const (
	DefaultChunkSize = 1000
	MaxChunkSize     = 10_000
	maxMessageBytes  = 1 << 20
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS policy is enforced by the HTTP middleware
	},
}

// Handler manages WebSocket connections
type Handler struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *zap.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(registry *service.Registry, metrics *monitoring.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleConnection upgrades the request and serves stream requests until the
// client disconnects
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	h.metrics.IncWSConnections()
	defer h.metrics.DecWSConnections()

	connID := uuid.NewString()
	log := h.logger.With(zap.String("conn_id", connID))
	log.Debug("websocket connected")

	reqCtx := c.Request.Context()

	h.send(conn, types.StreamEvent{
		Type:     "system",
		StreamID: connID,
		Message:  "connected to primecore",
	})

	for {
		_, r, err := conn.NextReader()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("websocket read error", zap.Error(err))
			}
			break
		}

		// integers in params must survive beyond 2^53
		var msg types.StreamRequest
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&msg); err != nil {
			h.sendError(conn, "", "malformed message: "+err.Error(), "invalid_input")
			continue
		}
		h.metrics.RecordWSMessage("in", msg.Type)

		switch msg.Type {
		case "execute":
			h.handleExecute(reqCtx, conn, msg)
		case "list":
			h.handleList(reqCtx, conn, msg)
		case "ping":
			h.send(conn, types.StreamEvent{Type: "pong"})
		default:
			h.sendError(conn, "", "unknown message type: "+msg.Type, "invalid_input")
		}
	}
	log.Debug("websocket disconnected")
}

// run validates and executes one tool
func (h *Handler) run(ctx context.Context, msg types.StreamRequest) (*types.Result, bool) {
	if err := utils.ValidateToolID(msg.ToolID, "tool_id", true); err != nil {
		return &types.Result{Error: strPtr(err.Error()), ErrorKind: "invalid_input"}, false
	}
	if err := utils.ValidateParams(msg.Params); err != nil {
		return &types.Result{Error: strPtr(err.Error()), ErrorKind: "invalid_input"}, false
	}

	requestID := id.NewRequestID().String()
	result, err := h.registry.Execute(ctx, msg.ToolID, msg.Params, &types.Context{RequestID: &requestID})
	if result == nil {
		text := "internal error"
		if err != nil {
			text = err.Error()
		}
		return &types.Result{Error: &text, ErrorKind: "internal"}, false
	}
	return result, result.Success
}

func (h *Handler) handleExecute(ctx context.Context, conn *websocket.Conn, msg types.StreamRequest) {
	result, ok := h.run(ctx, msg)
	if !ok {
		h.sendResultError(conn, "", msg.ToolID, result)
		return
	}
	h.send(conn, types.StreamEvent{Type: "result", ToolID: msg.ToolID, Data: result.Data})
}

// handleList runs a list tool and delivers data["result"] in chunks, then a
// complete event carrying the remaining fields
func (h *Handler) handleList(ctx context.Context, conn *websocket.Conn, msg types.StreamRequest) {
	streamID := uuid.NewString()

	chunk := msg.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	if chunk > MaxChunkSize {
		chunk = MaxChunkSize
	}

	result, ok := h.run(ctx, msg)
	if !ok {
		h.sendResultError(conn, streamID, msg.ToolID, result)
		return
	}

	items, ok := Items(result.Data["result"])
	if !ok {
		h.sendError(conn, streamID, msg.ToolID+" does not return a list", "invalid_input")
		return
	}

	h.send(conn, types.StreamEvent{Type: "stream_start", StreamID: streamID, ToolID: msg.ToolID})
	for start := 0; start < len(items); start += chunk {
		end := min(start+chunk, len(items))
		if err := h.send(conn, types.StreamEvent{
			Type:     "items",
			StreamID: streamID,
			ToolID:   msg.ToolID,
			Items:    items[start:end],
		}); err != nil {
			return
		}
	}

	rest := make(map[string]interface{}, len(result.Data))
	for k, v := range result.Data {
		if k != "result" {
			rest[k] = v
		}
	}
	h.send(conn, types.StreamEvent{Type: "complete", StreamID: streamID, ToolID: msg.ToolID, Data: rest})
}

// Items flattens a slice value of any element type; other values report false
func Items(v interface{}) ([]interface{}, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func (h *Handler) send(conn *websocket.Conn, event types.StreamEvent) error {
	event.Timestamp = time.Now().Unix()
	h.metrics.RecordWSMessage("out", event.Type)
	return conn.WriteJSON(event)
}

func (h *Handler) sendResultError(conn *websocket.Conn, streamID, toolID string, result *types.Result) error {
	msg := "tool failed"
	if result.Error != nil {
		msg = *result.Error
	}
	return h.send(conn, types.StreamEvent{
		Type:      "error",
		StreamID:  streamID,
		ToolID:    toolID,
		Message:   msg,
		ErrorKind: result.ErrorKind,
	})
}

func (h *Handler) sendError(conn *websocket.Conn, streamID, msg, kind string) error {
	return h.send(conn, types.StreamEvent{
		Type:      "error",
		StreamID:  streamID,
		Message:   msg,
		ErrorKind: kind,
	})
}

func strPtr(s string) *string {
	return &s
}
