package api

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the storefront API runtime settings, parsed from the
// environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// PostgresDSN enables the durable catalog cache and user store. Left
	// empty, the API runs on in-memory adapters.
	PostgresDSN string `env:"POSTGRES_DSN"`

	// RedisAddr enables the Redis session store, the first choice for
	// session tokens.
	RedisAddr string `env:"REDIS_ADDR"`

	// SessionSecret enables stateless JWT sessions when neither Redis nor
	// Postgres is available.
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	CatalogBaseURL     string        `env:"CATALOG_BASE_URL" envDefault:"https://fakestoreapi.com"`
	CatalogCacheWindow time.Duration `env:"CATALOG_CACHE_WINDOW" envDefault:"5m"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse configuration: %w", err)
	}
	return cfg, nil
}
