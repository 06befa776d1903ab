package http

import "github.com/gin-gonic/gin"

// Register mounts every JSON route on r.
func (h *Handlers) Register(r gin.IRoutes) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	// Math
	r.POST("/math/evaluate", h.Evaluate)
	r.POST("/math/solve", h.Solve)
	r.GET("/math/examples", h.ListExamples)

	// Service management
	r.GET("/services", h.ListServices)
	r.POST("/services/discover", h.DiscoverServices)
	r.POST("/services/execute", h.ExecuteService)

	r.GET("/metrics/json", h.MetricsSnapshot)
}
