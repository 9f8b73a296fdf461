package repositoryImp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"agrisense/entities"
	"agrisense/pkg/settings/repository"
)

const keyPrefix = "settings:"

type redisRepo struct{ client *redis.Client }

// NewRedis stores each user's settings as one JSON value under settings:<uid>.
func NewRedis(client *redis.Client) repository.SettingsRepository { return &redisRepo{client} }

func Key(uid string) string { return keyPrefix + uid }

func (r *redisRepo) Get(ctx context.Context, uid string) (*entities.Settings, error) {
	data, err := r.client.Get(ctx, Key(uid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings from Redis: %w", err)
	}
	var s entities.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode settings for %s: %w", uid, err)
	}
	return &s, nil
}

func (r *redisRepo) Save(ctx context.Context, uid string, s entities.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, Key(uid), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set settings in Redis: %w", err)
	}
	return nil
}
