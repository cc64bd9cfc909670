package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"enviromaster/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const configTTL = 15 * time.Minute

// ConfigCache keeps resolved service configs in Redis so every service-card
// mount does not round-trip to DynamoDB.
type ConfigCache struct {
	client *redis.Client
}

var _ interfaces.IConfigCache = (*ConfigCache)(nil)

func New(addr, password string, db int) *ConfigCache {
	return &ConfigCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *ConfigCache) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
}

func (c *ConfigCache) Get(ctx context.Context, serviceID string) (json.RawMessage, error) {
	data, err := c.client.Get(ctx, buildConfigKey(serviceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}
	return data, nil
}

func (c *ConfigCache) Set(ctx context.Context, serviceID string, cfg json.RawMessage) error {
	return c.client.Set(ctx, buildConfigKey(serviceID), []byte(cfg), configTTL).Err()
}

func (c *ConfigCache) Drop(ctx context.Context, serviceID string) error {
	return c.client.Del(ctx, buildConfigKey(serviceID)).Err()
}

func buildConfigKey(serviceID string) string {
	return fmt.Sprintf("service-config:%s", serviceID)
}
