package server

import (
	"log/slog"

	"github.com/daygrid/scheduler/internal/middleware"
	"github.com/daygrid/scheduler/pkg/config"
	"github.com/daygrid/scheduler/pkg/event"
	"github.com/daygrid/scheduler/pkg/health"
	"github.com/daygrid/scheduler/pkg/post"
	"github.com/daygrid/scheduler/pkg/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
)

func GetEngine(logger *slog.Logger, cfg config.Config, authentication middleware.AuthenticationMiddleware, userHandler user.Handler, eventHandler event.Handler, postHandler post.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sloggin.New(logger))
	r.Use(middleware.CorrelationID())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CorsAllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CorsAllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	router := r.Group(cfg.BasePath)

	router.GET("/health", health.Health)

	user.Routes(router, authentication, userHandler)
	event.Routes(router, authentication, eventHandler)
	post.Routes(router, authentication, postHandler)

	return r
}
