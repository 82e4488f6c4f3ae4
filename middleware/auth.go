package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"detailops/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// TenantAuthMiddleware resolves the caller's (tenantID, userID) from a JWT
// bearer token. Every engine operation requires a tenant context; requests
// without one never reach the services.
func TenantAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		tenantID, userID, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || tenantID == "" || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		// Cache the token hash so repeated requests skip signature checks on
		// hot paths; a miss just re-validates.
		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			ctx := context.Background()
			cacheKey := utils.AuthCachePrefix + tenantID + ":" + userID
			computedHash := utils.HashToken(tokenString)
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			switch {
			case err == nil && cachedHash != computedHash:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token mismatch",
				})
				return
			case err == nil:
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			case err == redis.Nil:
				_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
			}
		}

		c.Set("tenantID", tenantID)
		c.Set("userID", userID)
		c.Next()
	}
}

// TenantID extracts the authenticated tenant id from the gin context.
func TenantID(c *gin.Context) string {
	if v, ok := c.Get("tenantID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
