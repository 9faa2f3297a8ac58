// Package config loads server settings from an optional YAML file and the
// environment, with env vars taking precedence. A .env file is honored for
// local development.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates application configuration values
type Config struct {
	Addr           string
	Mode           string
	AllowedOrigins []string
	JWTSecret      string
	TokenTTL       time.Duration
}

// fileConfig is the YAML shape of the optional config file
type fileConfig struct {
	Addr           string   `yaml:"addr"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	JWTSecret      string   `yaml:"jwt_secret"`
	TokenTTL       string   `yaml:"token_ttl"`
}

const (
	defaultAddr      = ":8080"
	defaultMode      = "debug"
	defaultJWTSecret = "shelfshare-dev-secret"
	defaultTokenTTL  = time.Hour
)

// Load reads configuration, applying defaults. The lookup order is:
// defaults, then CONFIG_FILE (YAML) if set, then environment variables.
func Load() (Config, error) {
	// best effort; a missing .env file is not an error
	_ = godotenv.Load()

	cfg := Config{
		Addr:      defaultAddr,
		Mode:      defaultMode,
		JWTSecret: defaultJWTSecret,
		TokenTTL:  defaultTokenTTL,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitCSV(v)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		cfg.TokenTTL = d
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.Mode != "" {
		cfg.Mode = fc.Mode
	}
	if len(fc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = fc.AllowedOrigins
	}
	if fc.JWTSecret != "" {
		cfg.JWTSecret = fc.JWTSecret
	}
	if fc.TokenTTL != "" {
		d, err := time.ParseDuration(fc.TokenTTL)
		if err != nil {
			return fmt.Errorf("invalid token_ttl %q in %s: %w", fc.TokenTTL, path, err)
		}
		cfg.TokenTTL = d
	}
	return nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
