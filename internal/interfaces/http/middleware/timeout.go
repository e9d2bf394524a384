package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds every downstream call by deadline. The handler chain runs
// on the request goroutine; blocking work (commerce API calls, Redis) fails
// with context.DeadlineExceeded once the budget is spent, and the handler's
// own error path renders the response. No second goroutine ever touches the
// response writer.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
