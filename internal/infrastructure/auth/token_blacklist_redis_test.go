//go:build integration

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/aqario/backend/internal/infrastructure/auth"
	"github.com/aqario/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) config.RedisConfig {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return config.RedisConfig{Enabled: true, Host: host, Port: port.Int()}
}

func TestRedisTokenBlacklist(t *testing.T) {
	cfg := startRedis(t)
	ctx := context.Background()

	client, err := auth.NewRedisClient(ctx, cfg)
	require.NoError(t, err)
	defer client.Close()
	blacklist := auth.NewRedisTokenBlacklist(client)

	require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-1", time.Minute))

	listed, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, listed)

	listed, err = blacklist.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, listed)

	ttl, err := client.TTL(ctx, auth.KeyPrefix+"jti:jti-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	issued := time.Now().Add(-time.Minute)
	require.NoError(t, blacklist.AddUserTokensToBlacklist(ctx, "user-1", time.Hour))
	invalidated, err := blacklist.IsUserTokenInvalidated(ctx, "user-1", issued)
	require.NoError(t, err)
	assert.True(t, invalidated)

	invalidated, err = blacklist.IsUserTokenInvalidated(ctx, "user-2", issued)
	require.NoError(t, err)
	assert.False(t, invalidated)
}
