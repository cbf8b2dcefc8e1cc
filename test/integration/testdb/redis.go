//go:build integration

package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisContainer wraps a Redis testcontainer.
type RedisContainer struct {
	Container testcontainers.Container
	URI       string
	Client    *redis.Client
}

// SetupRedis starts a Redis testcontainer for integration tests.
func SetupRedis(t *testing.T) *RedisContainer {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to get Redis host: %v", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to get Redis port: %v", err)
	}

	uri := host + ":" + port.Port()
	client := redis.NewClient(&redis.Options{Addr: uri})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to ping Redis: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
		_ = container.Terminate(context.Background())
	})

	return &RedisContainer{
		Container: container,
		URI:       uri,
		Client:    client,
	}
}

// FlushDB clears all keys from Redis.
func (rc *RedisContainer) FlushDB(t *testing.T) {
	t.Helper()
	if err := rc.Client.FlushDB(context.Background()).Err(); err != nil {
		t.Fatalf("Failed to flush Redis: %v", err)
	}
}
