package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"workflowpro-api/internal/domain/entities"
)

// RedisService is an optional cache. When REDIS_URL is unset or the server
// is unreachable the service runs in disabled mode: writes are dropped and
// reads always miss, so every caller falls through to the database.
type RedisService struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisService(redisURL string, logger *zap.Logger) *RedisService {
	if redisURL == "" {
		return &RedisService{logger: logger}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, cache disabled", zap.Error(err))
		return &RedisService{logger: logger}
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, cache disabled", zap.Error(err))
		return &RedisService{logger: logger}
	}

	logger.Info("connected to redis")
	return &RedisService{client: client, logger: logger}
}

func (r *RedisService) Enabled() bool {
	return r.client != nil
}

func (r *RedisService) SetProfile(ctx context.Context, email string, user *entities.User, ttl time.Duration) error {
	return r.SetJSON(ctx, "profile:"+email, user, ttl)
}

// GetProfile returns (nil, nil) on a cache miss or when the cache is
// disabled, mirroring the repository not-found convention.
func (r *RedisService) GetProfile(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	found, err := r.GetJSON(ctx, "profile:"+email, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *RedisService) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *RedisService) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if r.client == nil {
		return false, nil
	}
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisService) DeleteKey(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, key).Err()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
