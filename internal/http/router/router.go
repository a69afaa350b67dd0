package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"promptrelay.app/relay/internal/http/handler"
	"promptrelay.app/relay/internal/http/middleware"
	"promptrelay.app/relay/internal/service"
)

type RouterConfig struct {
	RequestIDHeader string
	OTelServiceName string // Empty disables otelgin
}

// New builds the engine with the full middleware chain and all routes.
func New(services *service.Services, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// OTel span first so recovery and access logs carry trace ids; CORS before
	// anything that could reject a preflight.
	if cfg.OTelServiceName != "" {
		router.Use(otelgin.Middleware(cfg.OTelServiceName))
	}
	router.Use(middleware.RequestID(cfg.RequestIDHeader))
	router.Use(middleware.Recovery())
	router.Use(middleware.AccessLog("/health"))
	router.Use(middleware.CORS(cfg.RequestIDHeader))

	SetupRoutes(router, services)

	return router
}

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		generateHandler := handler.NewGenerateHandler(services.Generate())
		GenerateRouter(api, generateHandler)
	}
}
