package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewMetricsTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}

func TestRecordSolve(t *testing.T) {
	m := NewMetrics()

	m.RecordSolve("arithmetic", time.Millisecond)
	m.RecordSolve("arithmetic", time.Millisecond)
	m.RecordSolve("factorial", time.Millisecond)
	m.RecordSolve("", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SolveTotal.WithLabelValues("arithmetic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SolveUnmatched))

	snap := m.Snapshot()
	assert.Equal(t, map[string]int64{"arithmetic": 2, "factorial": 1}, snap.Solved)
	assert.Equal(t, int64(1), snap.Unmatched)
}

func TestRecordEval(t *testing.T) {
	m := NewMetrics()

	m.RecordEval("")
	m.RecordEval("division_by_zero")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EvalTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EvalErrors.WithLabelValues("division_by_zero")))

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Evaluations)
	assert.Equal(t, int64(1), snap.EvalErrors)
}

func TestSnapshotIsCopy(t *testing.T) {
	m := NewMetrics()
	m.RecordSolve("mean", time.Millisecond)

	snap := m.Snapshot()
	snap.Solved["mean"] = 99

	assert.Equal(t, int64(1), m.Snapshot().Solved["mean"])
}

func TestWSConnections(t *testing.T) {
	m := NewMetrics()
	m.IncWSConnections()
	m.IncWSConnections()
	m.DecWSConnections()
	m.RecordWSMessage("in", "query")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WSConnections))
	assert.Equal(t, int64(1), m.Snapshot().ActiveConnections)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WSMessages.WithLabelValues("in", "query")))
}

func TestMiddleware(t *testing.T) {
	m := NewMetrics()
	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, path := range []string{"/ok", "/ok", "/bad", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/bad", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))

	snap := m.Snapshot()
	assert.Equal(t, int64(4), snap.TotalRequests)
	assert.Equal(t, int64(2), snap.TotalErrors)
	assert.GreaterOrEqual(t, snap.AvgLatencyMS, 0.0)
}

func TestHandler(t *testing.T) {
	m := NewMetrics()
	m.RecordSolve("sqrt", time.Millisecond)
	NewTimer(m, "math", "math.solve").Stop("success")

	w := httptest.NewRecorder()
	Handler(m).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `mathsearch_solve_total{classifier="sqrt"} 1`))
	assert.Contains(t, body, "mathsearch_uptime_seconds")
	assert.Contains(t, body, `mathsearch_service_calls_total{service="math",status="success",tool="math.solve"} 1`)
}
