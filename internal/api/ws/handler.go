package ws

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathSearch/backend/internal/engine/solver"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/monitoring"
	mathProvider "github.com/GriffinCanCode/MathSearch/backend/internal/providers/math"
	"github.com/GriffinCanCode/MathSearch/backend/internal/shared/types"
	"github.com/GriffinCanCode/MathSearch/backend/internal/shared/utils"
)

const writeWait = 10 * time.Second

// Handler manages WebSocket connections from the voice search front end
type Handler struct {
	math        *mathProvider.Provider
	metrics     *monitoring.Metrics
	logger      *logging.Logger
	upgrader    websocket.Upgrader
	maxQueryLen int
}

// NewHandler creates a new WebSocket handler. With no origins every origin
// is accepted.
func NewHandler(mathSvc *mathProvider.Provider, metrics *monitoring.Metrics, logger *logging.Logger, origins ...string) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	h := &Handler{
		math:        mathSvc,
		metrics:     metrics,
		logger:      logger.Named("ws"),
		maxQueryLen: utils.DefaultMaxQueryLength,
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: originChecker(origins)}
	return h
}

// WithMaxQueryLen overrides the accepted query length.
func (h *Handler) WithMaxQueryLen(n int) *Handler {
	if n > 0 {
		h.maxQueryLen = n
	}
	return h
}

func originChecker(origins []string) func(*http.Request) bool {
	if len(origins) == 0 {
		return func(*http.Request) bool { return true }
	}
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		allowed[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed[origin]
	}
}

// encodeFailure is sent in place of a reply that could not be encoded.
var encodeFailure = []byte(`{"type":"error","message":"failed to encode response"}`)

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(utils.MaxMessageSize)
	sessionID := uuid.NewString()
	log := h.logger.With(zap.String("session_id", sessionID))

	if h.metrics != nil {
		h.metrics.IncWSConnections()
		defer h.metrics.DecWSConnections()
	}

	h.send(conn, map[string]interface{}{
		"type":       "system",
		"message":    "Connected to MathSearch",
		"session_id": sessionID,
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("WebSocket read error", zap.Error(err))
			}
			return
		}

		var msg types.WSMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			h.record("in", "invalid")
			h.sendError(conn, "invalid message")
			continue
		}
		h.record("in", msg.Type)

		switch msg.Type {
		case "query":
			h.handleQuery(conn, msg)
		case "evaluate":
			h.handleEvaluate(conn, msg, c)
		case "ping":
			h.send(conn, map[string]interface{}{"type": "pong"})
		default:
			h.sendError(conn, "unknown message type")
		}
	}
}

func (h *Handler) handleQuery(conn *websocket.Conn, msg types.WSMessage) {
	if err := utils.ValidateQuery(msg.Message, h.maxQueryLen); err != nil {
		h.sendError(conn, err.Error())
		return
	}

	res, ok := h.math.SolveQuery(msg.Message)
	if !ok {
		h.send(conn, map[string]interface{}{
			"type":   "no_result",
			"query":  msg.Message,
			"speech": solver.FallbackSpeech(msg.Message),
		})
		return
	}

	h.send(conn, map[string]interface{}{
		"type":   "solution",
		"result": res,
	})
}

func (h *Handler) handleEvaluate(conn *websocket.Conn, msg types.WSMessage, c *gin.Context) {
	result, err := h.math.Evaluate(c.Request.Context(), map[string]interface{}{"expression": msg.Message}, nil)
	if err != nil {
		h.sendError(conn, err.Error())
		return
	}
	if !result.Success {
		h.send(conn, map[string]interface{}{
			"type":    "error",
			"message": *result.Error,
			"kind":    result.Data["kind"],
		})
		return
	}

	h.send(conn, map[string]interface{}{
		"type":       "value",
		"value":      result.Data["result"],
		"display":    result.Data["display"],
		"expression": msg.Message,
	})
}

func (h *Handler) send(conn *websocket.Conn, data map[string]interface{}) error {
	msgType, _ := data["type"].(string)
	payload, err := sonic.Marshal(data)
	if err != nil {
		h.logger.Error("failed to encode message", zap.String("type", msgType), zap.Error(err))
		payload, msgType = encodeFailure, "error"
	}
	h.record("out", msgType)

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (h *Handler) sendError(conn *websocket.Conn, message string) error {
	return h.send(conn, map[string]interface{}{
		"type":    "error",
		"message": message,
	})
}

func (h *Handler) record(direction, msgType string) {
	if h.metrics != nil {
		h.metrics.RecordWSMessage(direction, msgType)
	}
}
