package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/db"
)

// checks "X-Device-Serial" + "X-Device-Key", verifies the key against the
// stored hash, and sets "currentDevice" in context. Disabled devices are
// rejected before the key is checked.
func DeviceKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		serial := c.GetHeader("X-Device-Serial")
		key := c.GetHeader("X-Device-Key")
		if serial == "" || key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing device credentials"})
			return
		}

		device, err := db.GetDeviceBySerial(serial)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown device"})
			return
		}
		if !device.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "device disabled"})
			return
		}
		if !CheckPassword(device.APIKeyHash, key) {
			log.Warn().Str("serial", serial).Msg("device presented an invalid API key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid device key"})
			return
		}

		c.Set("currentDevice", &device)
		c.Next()
	}
}
