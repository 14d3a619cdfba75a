package handler

import (
	"strconv"

	"github.com/daygrid/scheduler/internal/errdef"

	"github.com/gin-gonic/gin"
)

// GetPathParameter parses a numeric path parameter. A value that is not an
// unsigned integer is reported on the context as a bad request, the error
// handler middleware writes the response.
func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	value := c.Param(parameter)
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("error parsing %q: %v", parameter, err))
		return 0, false
	}
	return uint(id), true
}
