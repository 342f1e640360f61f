package redis

import (
	"context"
	"fmt"
	"time"

	"catering/internal/app/config"

	"github.com/go-redis/redis/v8"
)

const jwtPrefix = "jwt."

type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := &Client{cfg: cfg}

	client.client = redis.NewClient(&redis.Options{
		Password:    cfg.Password,
		Username:    cfg.User,
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		DB:          0,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if err := client.client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cannot ping redis: %w", err)
	}

	return client, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// WriteJWTToBlacklist добавляет токен в blacklist до истечения его срока
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.client.Set(ctx, jwtPrefix+jwtStr, true, jwtTTL).Err()
}

// CheckJWTInBlacklist возвращает nil если токен находится в blacklist
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) error {
	return c.client.Get(ctx, jwtPrefix+jwtStr).Err()
}
