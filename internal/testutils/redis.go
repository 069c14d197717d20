// Package testutils provides shared helpers for integration tests.
package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const redisImage = "redis:7-alpine"

// CreateTestRedisClient starts a throwaway Redis container and returns a
// client connected to it. The test is skipped when Docker is unavailable;
// container and client are cleaned up with the test.
func CreateTestRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Docker not available for Redis container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err, "failed to resolve Redis container host")
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err, "failed to resolve Redis container port")

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + port.Port(),
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(pingCtx).Err(), "Redis container not responding")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}
