/*
Package monitoring provides metrics collection for the calculator backend.

# Overview

Prometheus collectors track HTTP traffic, service tool calls and the
calculator itself: evaluations by outcome, sampling time, plot gaps, history
appends and theme changes.

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record calculator metrics
	metrics.RecordEvaluation("number", "deg")

	// Time operations
	timer := monitoring.NewTimer(metrics, "math", "math.evaluate")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Gatherer(), promhttp.HandlerOpts{})))
*/
package monitoring
