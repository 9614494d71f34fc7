package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/pereval-api/internal/logger"
	"github.com/sbilibin2017/pereval-api/internal/models"
)

// ActivityTypeCacheRepository caches activity types in Redis
type ActivityTypeCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached entries
}

// NewActivityTypeCacheRepository creates a new repository instance with the given TTL
func NewActivityTypeCacheRepository(client *redis.Client, expiration time.Duration) *ActivityTypeCacheRepository {
	return &ActivityTypeCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached activity type, or nil on a cache miss.
func (r *ActivityTypeCacheRepository) Get(ctx context.Context, id int64) (*models.ActivityTypeDB, error) {
	key := activityTypeKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow(
		"key", key,
		"result", string(val),
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var activityType models.ActivityTypeDB
	if err := json.Unmarshal(val, &activityType); err != nil {
		return nil, fmt.Errorf("decode cached activity type %d: %w", id, err)
	}
	return &activityType, nil
}

// Set caches the activity type with the repository TTL.
func (r *ActivityTypeCacheRepository) Set(ctx context.Context, activityType *models.ActivityTypeDB) error {
	key := activityTypeKey(activityType.ID)

	val, err := json.Marshal(activityType)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, val, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", string(val),
		"error", err,
	)

	return err
}

func activityTypeKey(id int64) string {
	return fmt.Sprintf("activity_type:%d", id)
}
