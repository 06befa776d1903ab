package http

import (
	"strings"

	"github.com/GriffinCanCode/MathSearch/backend/internal/infrastructure/monitoring"
)

// HandlerMetrics wraps handlers with metrics tracking. A nil collector makes
// every tracker a no-op.
type HandlerMetrics struct {
	metrics *monitoring.Metrics
}

// NewHandlerMetrics creates a metrics wrapper
func NewHandlerMetrics(metrics *monitoring.Metrics) *HandlerMetrics {
	return &HandlerMetrics{metrics: metrics}
}

// TrackToolCall times a service tool call; the returned func records it
// with the given status.
func (hm *HandlerMetrics) TrackToolCall(toolID string) func(status string) {
	if hm.metrics == nil {
		return func(string) {}
	}

	serviceID := toolID
	if i := strings.IndexByte(toolID, '.'); i > 0 {
		serviceID = toolID[:i]
	}

	timer := monitoring.NewTimer(hm.metrics, serviceID, toolID)
	return timer.Stop
}
