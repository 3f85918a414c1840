package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"`
	Env           string `env:"ENV,            default=development"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	RunMigrations bool   `env:"RUN_MIGRATIONS, default=true"`

	Auth     AuthConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	HTTP     HTTPConfig
}

type AuthConfig struct {
	JWTSecret     string        `env:"JWT_SECRET, required"`
	JWTIssuer     string        `env:"JWT_ISSUER, default=pos-admin"`
	TokenTTL      time.Duration `env:"TOKEN_TTL,  default=8h"`
	LoginAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=8"`
	LoginWindow   time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

type PostgresConfig struct {
	URL      string `env:"DATABASE_URL, required"`
	MaxConns int32  `env:"DB_MAX_CONNS, default=10"`
}

type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type HTTPConfig struct {
	CORSOrigins    []string `env:"CORS_ORIGINS, default=http://localhost:5173"`
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// IsDevelopment reports whether the service runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "local"
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("load config: TOKEN_TTL must be positive")
	}
	if cfg.Auth.LoginAttempts < 1 {
		return nil, fmt.Errorf("load config: LOGIN_MAX_ATTEMPTS must be at least 1")
	}
	return &cfg, nil
}
