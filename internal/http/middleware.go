package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/requestid"
)

// RequestIDMiddleware accepts or generates an X-Request-ID, stores it in the
// request context and echoes it in the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestid.Sanitize(c.GetHeader(requestid.Header))
		c.Request = c.Request.WithContext(requestid.WithID(c.Request.Context(), id))
		c.Header(requestid.Header, id)
		c.Next()
	}
}
