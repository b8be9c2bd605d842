package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

// CtxRequestID is the context key the logging middlewares correlate on.
const CtxRequestID = "request_id"

// RequestID tags every request with a sortable unique id for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = xid.New().String()
		}

		c.Set(CtxRequestID, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
