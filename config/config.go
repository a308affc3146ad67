package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "FYYUR_"

type Config struct {
	Env      string         `koanf:"env" validate:"required,oneof=development test production"`
	Log      LogConfig      `koanf:"log"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=trace debug info warn error"`
}

type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
	SlowThreshold   time.Duration `koanf:"slow_threshold" validate:"gte=0"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		Env: "development",
		Log: LogConfig{Level: "info"},
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			SlowThreshold:   200 * time.Millisecond,
			AutoMigrate:     true,
		},
	}
}

// Load reads an optional .env file, then FYYUR_* environment variables.
// Nesting uses a double underscore: FYYUR_DATABASE__URL -> database.url.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()
	return load()
}

func load() (*Config, error) {
	cfg := Default()
	applyLegacyEnv(cfg, os.Environ())

	k := koanf.New(".")
	provider := env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return cfg, nil
}

// applyLegacyEnv honors the unprefixed PORT, DB_URL and CORS_ORIGIN variables.
// Prefixed variables loaded afterwards take precedence.
func applyLegacyEnv(cfg *Config, environ []string) {
	vars := map[string]string{}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	if v := vars["PORT"]; v != "" {
		cfg.Server.Port = v
	}
	if v := vars["DB_URL"]; v != "" {
		cfg.Database.URL = v
	}
	if v := vars["CORS_ORIGIN"]; v != "" {
		cfg.Server.CORSOrigins = strings.Split(v, ",")
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
