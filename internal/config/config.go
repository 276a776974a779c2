package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration, read from the environment at startup.
type Config struct {
	Addr    string `env:"BOOKSHELF_ADDR"     envDefault:":9000"`
	AppEnv  string `env:"APP_ENV"            envDefault:"development"`
	TLSCert string `env:"BOOKSHELF_TLS_CERT"`
	TLSKey  string `env:"BOOKSHELF_TLS_KEY"`

	ReadTimeout     time.Duration `env:"BOOKSHELF_READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"BOOKSHELF_WRITE_TIMEOUT"    envDefault:"10s"`
	IdleTimeout     time.Duration `env:"BOOKSHELF_IDLE_TIMEOUT"     envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"BOOKSHELF_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	MaxBodySize    int64    `env:"MAX_BODY_SIZE"   envDefault:"1048576"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Redis     RedisConfig
	RateLimit RateLimitConfig
	Tracing   TracingConfig
}

type RedisConfig struct {
	URL      string `env:"UPSTASH_REDIS_URL"`
	Addr     string `env:"REDIS_ADDR"`
	User     string `env:"REDIS_USER"`
	Password string `env:"REDIS_PASSWORD"`
}

// Enabled reports whether any Redis connection settings are present.
func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Addr != ""
}

type RateLimitConfig struct {
	RatePerSecond float64       `env:"RATE_LIMIT_RPS"    envDefault:"5"`
	Burst         int           `env:"RATE_LIMIT_BURST"  envDefault:"20"`
	WindowLimit   int           `env:"RATE_LIMIT_WINDOW_MAX" envDefault:"3000"`
	Window        time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1h"`
}

type TracingConfig struct {
	Enabled     bool   `env:"OTEL_ENABLED"      envDefault:"true"`
	Endpoint    string `env:"OTEL_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"bookshelf-api"`
}

// Load reads an optional .env file and then parses the environment.
// A missing .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate fails fast on bad config.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("BOOKSHELF_ADDR must not be empty")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("BOOKSHELF_TLS_CERT and BOOKSHELF_TLS_KEY must be set together")
	}
	for key, d := range map[string]time.Duration{
		"BOOKSHELF_READ_TIMEOUT":     c.ReadTimeout,
		"BOOKSHELF_WRITE_TIMEOUT":    c.WriteTimeout,
		"BOOKSHELF_IDLE_TIMEOUT":     c.IdleTimeout,
		"BOOKSHELF_SHUTDOWN_TIMEOUT": c.ShutdownTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s: must be > 0, got %s", key, d)
		}
	}
	if c.MaxBodySize <= 0 {
		return fmt.Errorf("MAX_BODY_SIZE: must be > 0, got %d", c.MaxBodySize)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT: want text or json, got %q", c.LogFormat)
	}
	if c.Redis.Enabled() {
		if c.RateLimit.RatePerSecond <= 0 || c.RateLimit.Burst < 1 {
			return errors.New("RATE_LIMIT_RPS must be > 0 and RATE_LIMIT_BURST >= 1")
		}
		if c.RateLimit.WindowLimit < 1 || c.RateLimit.Window <= 0 {
			return errors.New("RATE_LIMIT_WINDOW_MAX must be >= 1 and RATE_LIMIT_WINDOW > 0")
		}
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings you may want to log on startup.
func (c Config) HardeningWarnings() []string {
	var warns []string

	if c.ReadTimeout > time.Minute {
		warns = append(warns, fmt.Sprintf("BOOKSHELF_READ_TIMEOUT=%s is > 1m; slow clients can hold connections", c.ReadTimeout))
	}

	if strings.EqualFold(c.AppEnv, "production") {
		if c.TLSCert == "" {
			warns = append(warns, "TLS not configured; terminate TLS upstream or set BOOKSHELF_TLS_CERT/KEY")
		}
		if !c.Redis.Enabled() {
			warns = append(warns, "Redis not configured; rate limiting is disabled")
		}
		if strings.HasPrefix(c.Redis.URL, "redis://") {
			warns = append(warns, "UPSTASH_REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
		if c.Redis.URL == "" && c.Redis.Addr != "" && (c.Redis.User == "" || c.Redis.Password == "") {
			warns = append(warns, "REDIS_ADDR provided without REDIS_USER/REDIS_PASSWORD; require auth in production")
		}
		for _, o := range c.AllowedOrigins {
			if strings.Contains(o, "localhost") || strings.Contains(o, "127.0.0.1") {
				warns = append(warns, "CORS_ALLOWED_ORIGINS includes a loopback origin: "+o)
			}
		}
	}

	return warns
}
