/*
Package monitoring provides Prometheus metrics for the primecore service.

# Overview

Metrics owns a private registry carrying HTTP request metrics, per-tool call
and error counters, factorization work counters (trial factors, power
splits, rho splits and degenerate rho retries), WebSocket metrics, uptime,
and the Go runtime and process collectors.

Metrics implements the math provider's Observer, so every tool execution
and every factorization is recorded without the provider importing this
package.

# Usage

	metrics := monitoring.NewMetrics()
	ops := common.NewMathOps(settings, logger, metrics)

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
