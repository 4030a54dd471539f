package routes

import (
	"time"

	"github.com/ketankishore27/inventory-management/internal/core/container"
	"github.com/ketankishore27/inventory-management/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	RequestTimeout time.Duration
	// Registry enables GET /metrics when set.
	Registry *prometheus.Registry
}

func NewRouter(container *container.Container, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(container.Logger),
		middleware.AccessLogMiddleware(container.Logger),
		middleware.CORSMiddleware(),
	)
	if opts.Registry != nil {
		router.Use(middleware.NewMetrics(opts.Registry).Middleware())
	}

	RegisterUtilityRoutes(router, container, opts)
	RegisterDashboardRoutes(router, container, opts)

	return router
}

func RegisterDashboardRoutes(router *gin.Engine, container *container.Container, opts Options) {
	dashboard := router.Group("")
	dashboard.Use(middleware.TimeoutMiddleware(opts.RequestTimeout))

	dashboard.POST("/test", middleware.AppWorking)
	container.DeviceHandler.RegisterRoutes(dashboard)
	container.AllocationHandler.RegisterRoutes(dashboard)
}

func RegisterUtilityRoutes(router *gin.Engine, container *container.Container, opts Options) {
	router.GET("/health", middleware.HealthCheckMiddleware(container.Repository))

	if opts.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}
}
