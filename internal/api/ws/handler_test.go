package ws

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/MathSearch/backend/internal/engine/solver"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/monitoring"
	mathProvider "github.com/GriffinCanCode/MathSearch/backend/internal/providers/math"
)

func startServer(t *testing.T, metrics *monitoring.Metrics, origins ...string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := mathProvider.NewProvider(nil, nil, logging.NewNop())
	handler := NewHandler(provider, metrics, logging.NewNop(), origins...)

	router := gin.New()
	router.GET("/stream", handler.HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, header http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	welcome := read(t, conn)
	require.Equal(t, "system", welcome["type"])
	require.NotEmpty(t, welcome["session_id"])
	return conn
}

func read(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, sonic.Unmarshal(data, &out))
	return out
}

func write(t *testing.T, conn *websocket.Conn, msg string) {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
}

func TestQuerySolution(t *testing.T) {
	conn := dial(t, startServer(t, nil), nil)

	write(t, conn, `{"type":"query","message":"20% of 150"}`)
	msg := read(t, conn)

	assert.Equal(t, "solution", msg["type"])
	result := msg["result"].(map[string]interface{})
	assert.Equal(t, "percentage", result["classifier"])
	assert.Equal(t, "30", result["result"])
}

func TestQueryNoResult(t *testing.T) {
	conn := dial(t, startServer(t, nil), nil)

	write(t, conn, `{"type":"query","message":"open the pod bay doors"}`)
	msg := read(t, conn)

	assert.Equal(t, "no_result", msg["type"])
	assert.Equal(t, solver.FallbackSpeech("open the pod bay doors"), msg["speech"])
}

func TestEvaluate(t *testing.T) {
	conn := dial(t, startServer(t, nil), nil)

	write(t, conn, `{"type":"evaluate","message":"(1 + 2) * 3"}`)
	msg := read(t, conn)
	assert.Equal(t, "value", msg["type"])
	assert.Equal(t, 9.0, msg["value"])

	write(t, conn, `{"type":"evaluate","message":"4 / (2 - 2)"}`)
	msg = read(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "division_by_zero", msg["kind"])
}

func TestPingAndUnknown(t *testing.T) {
	conn := dial(t, startServer(t, nil), nil)

	write(t, conn, `{"type":"ping"}`)
	assert.Equal(t, "pong", read(t, conn)["type"])

	write(t, conn, `{"type":"dance"}`)
	msg := read(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "unknown message type", msg["message"])

	write(t, conn, `not json`)
	msg = read(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "invalid message", msg["message"])

	// Connection survives bad input
	write(t, conn, `{"type":"ping"}`)
	assert.Equal(t, "pong", read(t, conn)["type"])
}

func TestQueryValidation(t *testing.T) {
	conn := dial(t, startServer(t, nil), nil)

	write(t, conn, `{"type":"query","message":"   "}`)
	msg := read(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "query is required", msg["message"])
}

func TestMetrics(t *testing.T) {
	metrics := monitoring.NewMetrics()
	conn := dial(t, startServer(t, metrics), nil)

	write(t, conn, `{"type":"ping"}`)
	read(t, conn)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WSConnections))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WSMessages.WithLabelValues("in", "ping")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WSMessages.WithLabelValues("out", "pong")))
}

func TestOriginCheck(t *testing.T) {
	srv := startServer(t, nil, "https://math.example")
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	dial(t, srv, http.Header{"Origin": {"https://math.example"}})
}

func TestEvaluateOverflow(t *testing.T) {
	conn := dial(t, startServer(t, nil), nil)

	big := "1" + strings.Repeat("0", 200)
	write(t, conn, `{"type":"evaluate","message":"`+big+" * "+big+`"}`)
	msg := read(t, conn)
	assert.Equal(t, "value", msg["type"])
	assert.Nil(t, msg["value"])
	assert.Equal(t, "+Inf", msg["display"])

	write(t, conn, `{"type":"ping"}`)
	assert.Equal(t, "pong", read(t, conn)["type"])
}

func TestSendEncodeFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := monitoring.NewMetrics()
	handler := NewHandler(mathProvider.NewProvider(nil, nil, nil), metrics, logging.NewNop())

	router := gin.New()
	router.GET("/stream", func(c *gin.Context) {
		conn, err := handler.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = handler.send(conn, map[string]interface{}{"type": "value", "value": math.Inf(1)})
		_, _, _ = conn.ReadMessage()
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	msg := read(t, conn)
	assert.Equal(t, "error", msg["type"])
	assert.Equal(t, "failed to encode response", msg["message"])
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WSMessages.WithLabelValues("out", "error")))
}
