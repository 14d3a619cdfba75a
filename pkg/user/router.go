package user

import (
	"github.com/daygrid/scheduler/internal/middleware"

	"github.com/gin-gonic/gin"
)

func Routes(router *gin.RouterGroup, authentication middleware.AuthenticationMiddleware, handler Handler) {
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.SignIn)

	sessionResolvedRouter := router.Group("")
	sessionResolvedRouter.Use(authentication.ResolveSession)
	sessionResolvedRouter.GET("/auth/check", handler.AuthCheck)

	sessionRequiredRouter := router.Group("")
	sessionRequiredRouter.Use(authentication.RequireSession)
	sessionRequiredRouter.POST("/auth/logout", handler.SignOut)
	sessionRequiredRouter.GET("/users/me", handler.Me)
}
