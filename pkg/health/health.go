package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness. It deliberately checks nothing downstream so a
// flaky dependency does not restart the service.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
