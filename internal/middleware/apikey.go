package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "reconstruction/internal/errors"
)

// APIKeyHeader is the header carrying the shared secret.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth creates a Gin middleware that validates the X-API-Key header
// against the configured key. An empty configured key rejects every request
// with 503 so that an unconfigured server never runs open.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrAPIKeyNotConfigured)
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
