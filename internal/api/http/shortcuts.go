package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/primecore/internal/numtheory/numerr"
	"github.com/GriffinCanCode/primecore/internal/providers/math/common"
	"github.com/GriffinCanCode/primecore/internal/shared/types"
)

// StatusFor maps a result error kind onto the status the REST shortcuts use
func StatusFor(kind string) int {
	switch kind {
	case "":
		return http.StatusOK
	case numerr.KindInvalidInput:
		return http.StatusBadRequest
	case numerr.KindDomain:
		return http.StatusUnprocessableEntity
	case numerr.KindOutOfRange:
		return http.StatusRequestEntityTooLarge
	case common.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// IsPrime handles GET /primes/:n
func (h *Handlers) IsPrime(c *gin.Context) {
	h.shortcut(c, "math.isPrime")
}

// Factors handles GET /factors/:n
func (h *Handlers) Factors(c *gin.Context) {
	h.shortcut(c, "math.primeFactors")
}

// shortcut executes a single-integer tool with n taken from the path. The
// decimal string goes through the same parameter parsing as JSON input.
func (h *Handlers) shortcut(c *gin.Context, toolID string) {
	params := map[string]interface{}{"n": c.Param("n")}

	result, err := h.execute(c.Request.Context(), toolID, params, nil)
	if result == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(statusOf(result), result)
}

func statusOf(result *types.Result) int {
	if result.Success {
		return http.StatusOK
	}
	return StatusFor(result.ErrorKind)
}

// Summary provides high-level service metrics
type Summary struct {
	TotalRequests     int64   `json:"total_requests"`
	AverageLatencyMs  float64 `json:"average_latency_ms"`
	ErrorRate         float64 `json:"error_rate"`
	ToolCalls         int64   `json:"tool_calls"`
	ToolErrorRate     float64 `json:"tool_error_rate"`
	Factorizations    int64   `json:"factorizations"`
	RhoRetries        int64   `json:"rho_retries"`
	ActiveConnections int64   `json:"active_connections"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
}

// Stats handles GET /stats, a JSON digest of the Prometheus metrics
func (h *Handlers) Stats(c *gin.Context) {
	s := h.metrics.GetSnapshot()

	summary := Summary{
		TotalRequests:     s.TotalRequests,
		ToolCalls:         s.ToolCalls,
		Factorizations:    s.Factorizations,
		RhoRetries:        s.RhoRetries,
		ActiveConnections: s.ActiveConnections,
		UptimeSeconds:     s.Uptime.Seconds(),
	}
	if s.TotalRequests > 0 {
		summary.AverageLatencyMs = s.TotalDuration / float64(s.TotalRequests) * 1000
		summary.ErrorRate = float64(s.TotalErrors) / float64(s.TotalRequests)
	}
	if s.ToolCalls > 0 {
		summary.ToolErrorRate = float64(s.ToolErrors) / float64(s.ToolCalls)
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":  summary,
		"registry": h.registry.Stats(),
	})
}
