package middleware

import (
	"fmt"
	"net/http"

	"github.com/daygrid/scheduler/internal/errdef"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
)

// ErrorHandler maps errors attached to the gin context onto the JSON error
// envelope the frontend consumes. Anything without an errdef class is a
// server fault; its detail stays in the logs.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK && !c.Writer.Written() {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		// nolint:gocritic
		if errdef.IsBadRequest(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errdef.IsUnauthorized(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		} else if errdef.IsForbidden(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errdef.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errdef.IsDuplicated(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			id := sloggin.GetRequestID(c)
			message := fmt.Sprintf("something went wrong. We'll look into it if you send us the id %q", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": message})
		}
	}
}
