package router

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request id on both the request
// and the response.
const RequestIDHeader = "X-Request-ID"

// CtxKeyRequestID is the gin context key under which the request id is stored.
const CtxKeyRequestID = "_request_id"

// RequestIDMiddleware tags every request with a unique id. An id supplied by
// the client in the X-Request-ID header is kept, so ids can be propagated
// across services; otherwise a new UUID is generated. The id is stored in the
// gin context and echoed on the response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(CtxKeyRequestID, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the request id set by RequestIDMiddleware, or an empty
// string if the middleware did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(CtxKeyRequestID)
}
