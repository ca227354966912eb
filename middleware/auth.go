package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"sanyukt/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware authenticates requests with the app JWT. The verified
// subject id is stored in the context as "userID" and the role as "role".
// The Redis auth cache holds the hash of each member's most recent token;
// when an entry exists and disagrees, the presented token has been
// superseded by a newer login and is rejected. A cache miss falls back to
// plain JWT validation so Redis never affects availability.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		authCache := utils.AuthCacheClient
		if authCache != nil {
			cacheKey := utils.AuthCachePrefix + userID
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			switch {
			case err == nil:
				if cachedHash != utils.HashToken(tokenString) {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
						"error": "Token superseded",
					})
					return
				}
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			case err != redis.Nil:
				log.Printf("WARNING: error reading auth cache: %v. Continuing with token validation only.", err)
			}
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}
