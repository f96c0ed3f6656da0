package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseLimit reads the optional ?limit query as a result-count cap. A
// missing or non-numeric value means unbounded (0).
func parseLimit(c *gin.Context) int64 {
	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
