package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amparo-api/core/constants"
	"amparo-api/core/logger"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	SetMagicLinkToken(ctx context.Context, token, email string) error
	ConsumeMagicLinkToken(ctx context.Context, token string) (string, error)
	BlacklistToken(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	Close() error
}

type redisCache struct {
	client *redis.Client
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisCache(cfg RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis cache initialized", "addr", cfg.Addr, "db", cfg.DB)
	return &redisCache{client: client}, nil
}

// SetMagicLinkToken stores a single-use sign-in token mapped to the email it
// was issued for.
func (c *redisCache) SetMagicLinkToken(ctx context.Context, token, email string) error {
	key := constants.RedisKeyMagicLink + token
	ttl := time.Duration(constants.MagicLinkTTLMinutes) * time.Minute
	return c.client.Set(ctx, key, email, ttl).Err()
}

// ConsumeMagicLinkToken returns the email a token was issued for and deletes
// it, so a link can only be exchanged once.
func (c *redisCache) ConsumeMagicLinkToken(ctx context.Context, token string) (string, error) {
	key := constants.RedisKeyMagicLink + token
	email, err := c.client.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		logger.Error("Cache:ConsumeMagicLinkToken:Error:", err)
		return "", err
	}
	return email, nil
}

func (c *redisCache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	key := constants.RedisKeyTokenBlacklist + token
	return c.client.Set(ctx, key, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	key := constants.RedisKeyTokenBlacklist + token
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		logger.Error("Cache:IsTokenBlacklisted:Error:", err)
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
