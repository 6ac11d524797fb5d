package server

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseDependenciesClosesRedisWithoutDatabase(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{
		Logger: &logger,
		Redis:  redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}),
	}

	require.NoError(t, s.releaseDependencies())

	assert.ErrorIs(t, s.Redis.Ping(context.Background()).Err(), redis.ErrClosed)
}

func TestStartRequiresHTTPServer(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{Logger: &logger}

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}
