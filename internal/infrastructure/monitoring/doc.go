/*
Package monitoring provides Prometheus metrics for the math search server.

Each Metrics value owns a private registry, so tests and multiple servers can
construct their own without colliding on the default registerer.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(monitoring.Handler(metrics)))

	start := time.Now()
	res, ok := solver.Solve(query)
	if ok {
	    metrics.RecordSolve(res.Classifier, time.Since(start))
	} else {
	    metrics.RecordSolve("", time.Since(start))
	}
*/
package monitoring
