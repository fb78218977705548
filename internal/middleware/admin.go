package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRequired checks the is_admin claim set by AuthRequired. Approval and
// balance-mutation endpoints sit behind this gate, never behind a client flag.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists || !isAdmin.(bool) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
