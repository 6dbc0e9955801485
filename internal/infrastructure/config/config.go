package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DevJWTSecret is the fallback signing secret applied when JWT_SECRET is
// unset. It exists so a fresh checkout runs; it must never reach production.
const DevJWTSecret = "mtendere-dev-secret"

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// Store selects the user-store backend: memory (default) or mongo.
	Store string `env:"STORE, default=memory"`

	// Seed account ensured at startup; no account is seeded when the
	// password is left empty.
	AdminEmail    string `env:"ADMIN_EMAIL,    default=admin@mtendere.com"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	PublicCacheTTL time.Duration `env:"PUBLIC_CACHE_TTL, default=60s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=backoffice"`
}

// RedisConfig enables the public response cache when Addr is set.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
