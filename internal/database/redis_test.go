package database

import (
	"context"
	"io"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/pantrychef/backend/config"
)

func TestRedisOptions(t *testing.T) {
	opts, err := RedisOptions(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, opts)

	opts, err = RedisOptions(&config.Config{RedisHost: "cache", RedisPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)

	opts, err = RedisOptions(&config.Config{RedisURL: "redis://other:6380/2", RedisHost: "cache", RedisPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "other:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "pw", opts.Password)

	_, err = RedisOptions(&config.Config{RedisURL: "http://nope"})
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client, err := NewRedisClient(context.Background(), &config.Config{RedisURL: "redis://" + mr.Addr()}, logger)
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedisClientNotConfigured(t *testing.T) {
	client, err := NewRedisClient(context.Background(), &config.Config{}, nil)
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(context.Background(), &config.Config{RedisURL: "redis://" + addr}, nil)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}
