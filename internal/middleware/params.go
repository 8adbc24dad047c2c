package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// IntParam only lets a request through when the named path parameter is a
// non-negative decimal integer. The parsed value is stored in the context
// under the parameter name; anything else is answered as an unknown route.
func IntParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(name)
		if raw == "" || !isDigits(raw) {
			c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}
		c.Set(name, id)
		c.Next()
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
