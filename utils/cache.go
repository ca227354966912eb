// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"sanyukt/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// StoreAuthToken records the hash of a freshly issued token for its lifetime.
// A newer login for the same member supersedes the previous entry. Failures
// are logged and ignored: the cache only adds revocation, never availability.
func StoreAuthToken(userID, token string, ttl time.Duration) {
	client := AuthCacheClient
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Set(ctx, AuthCachePrefix+userID, HashToken(token), ttl).Err(); err != nil {
		log.Printf("WARNING: failed to store auth cache entry: %v", err)
	}
}
