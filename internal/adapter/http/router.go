package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/simaogato/portfolio-analytics-backend/internal/logger"
)

// NewRouter wires the middleware chain and the routes
func NewRouter(h *Handler, log *logger.Logger, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(RequestID())
	router.Use(Tracing())
	router.Use(Logger(log))
	router.Use(Metrics())
	router.Use(Recovery(log))
	router.Use(CORS(allowedOrigins))

	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/portfolio")
	{
		api.GET("/holdings", h.Holdings)
		api.GET("/allocation", h.Allocation)
		api.GET("/performance", h.Performance)
		api.GET("/summary", h.Summary)
	}

	return router
}
