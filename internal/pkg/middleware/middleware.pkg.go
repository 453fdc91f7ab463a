package middleware

import (
	"net/http"

	types "payment-portal/internal/common/type"
	"payment-portal/internal/pkg/helper"
	"payment-portal/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

func CorsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestInit tags every request with a correlation id and logs the access.
func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		logger.HTTP.Printf("%s %s request_id=%s", c.Request.Method, c.Request.URL.Path, requestID)

		c.Next()
	}
}

// ResponseInit installs the "send" function handlers use to write the
// uniform JSON envelope.
func ResponseInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("send", func(r *types.Response) {
			c.JSON(r.Code, helper.ToResponseAPI(r, c.GetString(RequestIDKey)))
			c.Abort()
		})

		c.Next()
	}
}

// ErrorRecovery turns a panic anywhere downstream into the generic error
// page instead of a blank 500.
func ErrorRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error.Printf("panic recovered: %v request_id=%s", rec, c.GetString(RequestIDKey))
				c.HTML(http.StatusInternalServerError, "error.html", gin.H{
					"Message": "Payment processing error",
					"Details": "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
