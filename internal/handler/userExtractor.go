package handler

import (
	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/pkg/model"

	"github.com/gin-gonic/gin"
)

// GetUserFromContext returns the session user. It is meant for routes
// behind RequireSession; a missing user is reported as unauthorized.
func GetUserFromContext(c *gin.Context) (*model.User, error) {
	user, ok := LookupUser(c)
	if !ok {
		return nil, errdef.NewUnauthorized("authentication required")
	}
	return user, nil
}

// LookupUser returns the session user if one was resolved. Public routes
// use it to serve both anonymous and signed-in requests.
func LookupUser(c *gin.Context) (*model.User, bool) {
	userData, exists := c.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userData.(*model.User)
	if !ok {
		return nil, false
	}
	return user, true
}
