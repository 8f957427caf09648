package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pageza/pantrychef/backend/config"
)

const pingTimeout = 5 * time.Second

// RedisOptions builds client options from the configuration. REDIS_URL wins
// over host and port.
func RedisOptions(cfg *config.Config) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		if opts.Password == "" {
			opts.Password = cfg.RedisPassword
		}
		return opts, nil
	}
	if cfg.RedisHost == "" {
		return nil, nil
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}
	return &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

// NewRedisClient connects to Redis and checks the connection. It returns
// nil, nil when Redis is not configured.
func NewRedisClient(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*redis.Client, error) {
	opts, err := RedisOptions(cfg)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		return nil, nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if logger != nil {
		logger.WithField("addr", opts.Addr).Info("connected to Redis")
	}
	return client, nil
}
