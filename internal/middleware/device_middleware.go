package middleware

import (
	"net/http"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceID requires the X-Device-ID header the mobile app sends with
// every request. There are no accounts; the device ID is the cart and
// wishlist owner key.
func DeviceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader("X-Device-ID")
		if deviceID == "" {
			response.Error(c, http.StatusBadRequest, "MISSING_DEVICE_ID", "X-Device-ID header is required", nil)
			c.Abort()
			return
		}
		c.Set("device_id", deviceID)
		c.Next()
	}
}

// RequestID tags each request so the response envelope and logs can be
// correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("X-Request-ID", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}
