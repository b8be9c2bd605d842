package middleware

import (
	"github.com/gin-gonic/gin"

	"waterpolo-backend/internal/shared/response"
)

// AdminMiddleware checks the is_admin flag resolved by AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(CtxIsAdmin)
		if !exists {
			response.Forbidden(c, "Access denied: admin privileges required")
			c.Abort()
			return
		}

		admin, ok := isAdmin.(bool)
		if !ok || !admin {
			response.Forbidden(c, "Access denied: admin privileges required")
			c.Abort()
			return
		}

		c.Next()
	}
}
