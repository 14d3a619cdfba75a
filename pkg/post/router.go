package post

import (
	"github.com/daygrid/scheduler/internal/middleware"

	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, authentication middleware.AuthenticationMiddleware, handler Handler) {
	router.GET("/posts", handler.List)
	router.GET("/posts/:id", handler.FindById)

	sessionRequiredRouter := router.Group("")
	sessionRequiredRouter.Use(authentication.RequireSession)
	sessionRequiredRouter.POST("/posts", handler.Create)
	sessionRequiredRouter.PUT("/posts/:id", handler.Update)
	sessionRequiredRouter.DELETE("/posts/:id", handler.Delete)
}
