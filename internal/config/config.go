// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	App       AppConfig
	Affiliate AffiliateConfig
	Catalog   CatalogConfig
	Chat      ChatConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// AffiliateConfig holds booking partner settings.
type AffiliateConfig struct {
	// PartnerDomain is the host of generated search links and offering booking URLs
	PartnerDomain string `env:"AFFILIATE_PARTNER_DOMAIN" envDefault:"www.12go.asia"`

	// Marker is the affiliate ID; empty leaves links untagged
	Marker string `env:"AFFILIATE_MARKER"`
}

// CatalogConfig holds route catalog settings.
type CatalogConfig struct {
	// Path is a JSON catalog file; empty uses the built-in catalog
	Path string `env:"CATALOG_PATH"`
}

// ChatConfig holds travel assistant upstream settings.
type ChatConfig struct {
	BaseURL        string        `env:"CHAT_BASE_URL" envDefault:"https://api.openai.com"`
	APIKey         string        `env:"CHAT_API_KEY"`
	Models         []string      `env:"CHAT_MODELS" envSeparator:"," envDefault:"gpt-4o-mini,gpt-3.5-turbo"`
	AttemptTimeout time.Duration `env:"CHAT_ATTEMPT_TIMEOUT" envDefault:"20s"`
	RequestTimeout time.Duration `env:"CHAT_REQUEST_TIMEOUT" envDefault:"45s"`
	MaxAttempts    int           `env:"CHAT_MAX_ATTEMPTS" envDefault:"2"`
	CacheTTL       time.Duration `env:"CHAT_CACHE_TTL" envDefault:"10m"`
	Temperature    float64       `env:"CHAT_TEMPERATURE" envDefault:"0.7"`
}

// Enabled reports whether an upstream API key is configured.
func (c ChatConfig) Enabled() bool {
	return c.APIKey != ""
}

// CORSConfig holds cross-origin settings for the single-page app.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Chat.Models = trimList(cfg.Chat.Models)
	cfg.CORS.AllowedOrigins = trimList(cfg.CORS.AllowedOrigins)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if err := validateDomain(cfg.Affiliate.PartnerDomain); err != nil {
		return fmt.Errorf("AFFILIATE_PARTNER_DOMAIN %w", err)
	}

	if err := validateChat(cfg.Chat); err != nil {
		return err
	}

	// A chat reply must finish before the server gives up writing the response.
	if cfg.Chat.RequestTimeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("CHAT_REQUEST_TIMEOUT (%s) must be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Chat.RequestTimeout, cfg.Server.WriteTimeout)
	}
	return nil
}

// validateDomain accepts a bare host name such as "www.12go.asia".
func validateDomain(domain string) error {
	if domain == "" {
		return fmt.Errorf("is required")
	}
	if strings.ContainsAny(domain, "/:?# ") {
		return fmt.Errorf("must be a bare host name without scheme or path, got %q", domain)
	}
	return nil
}

func validateChat(c ChatConfig) error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("CHAT_BASE_URL must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	if len(c.Models) == 0 {
		return fmt.Errorf("CHAT_MODELS must list at least one model")
	}
	if c.AttemptTimeout <= 0 {
		return fmt.Errorf("CHAT_ATTEMPT_TIMEOUT must be positive")
	}
	if c.RequestTimeout < c.AttemptTimeout {
		return fmt.Errorf("CHAT_REQUEST_TIMEOUT must be at least CHAT_ATTEMPT_TIMEOUT")
	}
	if c.MaxAttempts < 1 || c.MaxAttempts > 5 {
		return fmt.Errorf("CHAT_MAX_ATTEMPTS must be between 1 and 5, got %d", c.MaxAttempts)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CHAT_CACHE_TTL must not be negative")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("CHAT_TEMPERATURE must be between 0 and 2, got %v", c.Temperature)
	}
	return nil
}

// trimList drops blank entries and surrounding whitespace from a comma-separated list.
func trimList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
