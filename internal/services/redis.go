package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/railbook/railbook-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

const trainCacheTTL = time.Minute

const trainListCacheKey = "trains:all"

func trainCacheKey(trainID uint) string {
	return fmt.Sprintf("train:%d", trainID)
}

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// CacheTrainList stores the full train list in Redis
func CacheTrainList(ctx context.Context, trains []models.Train) error {
	data, err := json.Marshal(trains)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, trainListCacheKey, data, trainCacheTTL).Err()
}

// GetCachedTrainList retrieves the cached train list, if present
func GetCachedTrainList(ctx context.Context) ([]models.Train, error) {
	data, err := RedisClient.Get(ctx, trainListCacheKey).Result()
	if err != nil {
		return nil, err
	}

	var trains []models.Train
	if err := json.Unmarshal([]byte(data), &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

// CacheTrain stores a single train in Redis
func CacheTrain(ctx context.Context, train *models.Train) error {
	data, err := json.Marshal(train)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, trainCacheKey(train.ID), data, trainCacheTTL).Err()
}

// GetCachedTrain retrieves a cached train, if present
func GetCachedTrain(ctx context.Context, trainID uint) (*models.Train, error) {
	data, err := RedisClient.Get(ctx, trainCacheKey(trainID)).Result()
	if err != nil {
		return nil, err
	}

	var train models.Train
	if err := json.Unmarshal([]byte(data), &train); err != nil {
		return nil, err
	}
	return &train, nil
}

// InvalidateTrainCache drops the cached list and the cached entry for one
// train. Every capacity mutation calls this so read endpoints never serve a
// count older than the TTL after a booking or cancellation.
func InvalidateTrainCache(ctx context.Context, trainID uint) error {
	return RedisClient.Del(ctx, trainListCacheKey, trainCacheKey(trainID)).Err()
}
