// Package redis dials the session cache.
package redis

import (
	"context"
	"log/slog"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Connect dials Redis and verifies connectivity with a ping.
func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// TryConnect dials Redis and returns the client plus a cleanup function.
// When the address is missing or the ping fails, it logs and returns nil with
// a no-op cleanup so callers can fall back to another session store.
func TryConnect(ctx context.Context, addr string, logger *slog.Logger) (*goredis.Client, func()) {
	if strings.TrimSpace(addr) == "" {
		if logger != nil {
			logger.Warn("redis address not set, falling back to another session store")
		}
		return nil, func() {}
	}
	client, err := Connect(ctx, addr)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to connect to redis, falling back to another session store", slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	if logger != nil {
		logger.Info("redis connection established")
	}
	return client, func() { _ = client.Close() }
}
