package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	userpostgres "github.com/shopilens/storefront-api/internal/domains/users/adapters/persistence/postgres"
	platformpostgres "github.com/shopilens/storefront-api/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.TryConnect(ctx, os.Getenv("POSTGRES_DSN"), logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot purge sessions")
	}

	store := userpostgres.NewSessionStore(db, sessionTTLFromEnv())
	if err := store.PurgeExpired(ctx); err != nil {
		log.Fatalf("failed to purge sessions: %v", err)
	}
	log.Printf("session purge completed")
}

func sessionTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("SESSION_TTL"))
	if raw == "" {
		return userpostgres.DefaultSessionTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		return userpostgres.DefaultSessionTTL
	}
	return ttl
}
