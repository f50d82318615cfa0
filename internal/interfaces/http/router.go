// Package http wires the gin router and HTTP server for the engine's API.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/turtacn/CineStyle-Engine/internal/application/blending"
	"github.com/turtacn/CineStyle-Engine/internal/application/constellation"
	"github.com/turtacn/CineStyle-Engine/internal/application/matching"
	"github.com/turtacn/CineStyle-Engine/internal/domain/director"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CineStyle-Engine/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CineStyle-Engine/internal/interfaces/http/handlers"
	"github.com/turtacn/CineStyle-Engine/internal/interfaces/http/middleware"
)

// RouterConfig collects everything the router needs.
type RouterConfig struct {
	Mode     string
	Version  string
	Provider *director.Provider
	Matcher  matching.Service
	Blender  blending.Service
	Sessions constellation.Service
	Logger   logging.Logger
	Metrics  *prometheus.Metrics
}

// NewRouter builds the gin engine with all middleware and routes attached.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger, middleware.DefaultLoggingConfig()))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Metrics(cfg.Metrics))

	healthHandler := handlers.NewHealthHandler(cfg.Provider, cfg.Version)
	r.GET("/health", healthHandler.Health)
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	matchHandler := handlers.NewMatchHandler(cfg.Matcher)
	blendHandler := handlers.NewBlendHandler(cfg.Blender)
	classifyHandler := handlers.NewClassifyHandler()
	directorHandler := handlers.NewDirectorHandler(cfg.Provider)
	constellationHandler := handlers.NewConstellationHandler(cfg.Sessions)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/directors", directorHandler.List)
		v1.GET("/directors/:id", directorHandler.Get)

		v1.POST("/match", matchHandler.Match)
		v1.POST("/blend", blendHandler.Blend)
		v1.POST("/classify", classifyHandler.Classify)

		sessions := v1.Group("/constellation/sessions")
		{
			sessions.POST("", constellationHandler.CreateSession)
			sessions.DELETE("/:id", constellationHandler.CloseSession)
			sessions.POST("/:id/gestures", constellationHandler.ApplyGesture)
			sessions.POST("/:id/frame", constellationHandler.Frame)
		}
	}

	return r
}
