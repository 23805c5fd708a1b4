package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionIdleTTL is the idle timeout applied to sessions; every
	// authenticated request refreshes it.
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL, default=30m"`

	Mongo     MongoConfig
	Redis     RedisConfig
	SeedAdmin SeedAdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bank_admin"`
}

// RedisConfig selects the session backend. An empty Addr switches sessions to
// the in-memory store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// SeedAdminConfig describes the administrator created at first startup when
// no administrators exist.
type SeedAdminConfig struct {
	Username string `env:"SEED_ADMIN_USERNAME, default=admin"`
	Email    string `env:"SEED_ADMIN_EMAIL,    default=admin@example.com"`
	Password string `env:"SEED_ADMIN_PASSWORD, default=admin123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
