package event

import (
	"github.com/daygrid/scheduler/internal/middleware"

	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, authentication middleware.AuthenticationMiddleware, handler Handler) {
	sessionResolvedRouter := router.Group("")
	sessionResolvedRouter.Use(authentication.ResolveSession)
	sessionResolvedRouter.GET("/events", handler.List)
	sessionResolvedRouter.GET("/events/:id", handler.FindById)
	sessionResolvedRouter.GET("/calendar", handler.Calendar)

	sessionRequiredRouter := router.Group("")
	sessionRequiredRouter.Use(authentication.RequireSession)
	sessionRequiredRouter.POST("/events", handler.Create)
	sessionRequiredRouter.PUT("/events/:id", handler.Update)
	sessionRequiredRouter.DELETE("/events/:id", handler.Delete)
}
