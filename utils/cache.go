// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"digitalmindset/config"

	"github.com/go-redis/redis/v8"
)

// StoreClient is the Redis client backing the record store.
var StoreClient *redis.Client

// InitStoreCache connects the Redis client used by the redis store driver.
func InitStoreCache() {
	StoreClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStoreDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := StoreClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Store): %v", err)
	}
}

// GetStoreClient returns the Redis client for the record store.
func GetStoreClient() *redis.Client {
	if StoreClient == nil {
		InitStoreCache()
	}
	return StoreClient
}
