// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
)

// Environment variables read when the YAML leaves a value empty, and by
// FromEnv when there is no config file at all.
const (
	EnvAPIKey      = "ETSY_API_KEY"
	EnvAPISecret   = "ETSY_API_SECRET" //nolint:gosec // variable name, not a credential
	EnvCallbackURL = "CALLBACK_URL"
	EnvPort        = "PORT"
)

// DefaultPricePropertyID is the property that price varies by when no
// property roles are configured.
const DefaultPricePropertyID = 513

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Etsy    EtsyConfig    `yaml:"etsy"`
	Media   MediaConfig   `yaml:"media"`
	Publish PublishConfig `yaml:"publish"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// EtsyConfig defines the Etsy app identity and API settings.
type EtsyConfig struct {
	APIKey      string   `yaml:"api_key"`
	APISecret   string   `yaml:"api_secret"`
	CallbackURL string   `yaml:"callback_url"`
	Scopes      []string `yaml:"scopes"`
	AuthURL     string   `yaml:"auth_url"`
	TokenURL    string   `yaml:"token_url"`
	APIBaseURL  string   `yaml:"api_base_url"`
	// CodeVerifier pins the PKCE verifier instead of generating one per flow.
	CodeVerifier    string          `yaml:"code_verifier"`
	DefaultShopID   int64           `yaml:"default_shop_id"`
	RefreshInterval time.Duration   `yaml:"refresh_interval"`
	RequestTimeout  time.Duration   `yaml:"request_timeout"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines Etsy API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// MediaConfig defines remote media download settings.
type MediaConfig struct {
	MaxBytes     int64         `yaml:"max_bytes"`
	MaxRedirects int           `yaml:"max_redirects"`
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
}

// PublishConfig defines listing publication defaults.
type PublishConfig struct {
	PriceOnProperty    []int64 `yaml:"price_on_property"`
	QuantityOnProperty []int64 `yaml:"quantity_on_property"`
	SKUOnProperty      []int64 `yaml:"sku_on_property"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // text, json
	File       string `yaml:"file"`   // optional rotating log file
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// LoadDotEnv loads variables from .env files into the process environment
// without overriding variables that are already set. Missing files are
// skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	return finish(cfg)
}

// FromEnv builds the configuration from defaults and the environment alone.
func FromEnv() (*Config, error) {
	return finish(&Config{})
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setIfEmpty(&cfg.Etsy.APIKey, EnvAPIKey)
	setIfEmpty(&cfg.Etsy.APISecret, EnvAPISecret)
	setIfEmpty(&cfg.Etsy.CallbackURL, EnvCallbackURL)

	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" && cfg.Server.Port == 0 {
		if strings.Trim(v, "0123456789") != "" {
			return fmt.Errorf("%s: %q is not a decimal port", EnvPort, v)
		}
		port, err := cast.ToIntE(strings.TrimLeft(v, "0"))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		cfg.Server.Port = port
	}
	return nil
}

func setIfEmpty(dst *string, env string) {
	if *dst == "" {
		*dst = os.Getenv(env)
	}
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyEtsyDefaults(&cfg.Etsy)
	applyMediaDefaults(&cfg.Media)
	applyPublishDefaults(&cfg.Publish)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 3000
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 120 * time.Second
	}
}

func applyEtsyDefaults(e *EtsyConfig) {
	if len(e.Scopes) == 0 {
		e.Scopes = etsy.DefaultScopes
	}
	if e.AuthURL == "" {
		e.AuthURL = "https://www.etsy.com/oauth/connect"
	}
	if e.TokenURL == "" {
		e.TokenURL = "https://api.etsy.com/v3/public/oauth/token"
	}
	if e.APIBaseURL == "" {
		e.APIBaseURL = "https://openapi.etsy.com/v3/application"
	}
	if e.RefreshInterval == 0 {
		e.RefreshInterval = 5 * time.Minute
	}
	if e.RequestTimeout == 0 {
		e.RequestTimeout = 60 * time.Second
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = etsy.DefaultPerSecond
	}
	if r.Burst == 0 {
		r.Burst = etsy.DefaultBurst
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = etsy.DefaultDailyLimit
	}
}

func applyMediaDefaults(m *MediaConfig) {
	if m.MaxBytes == 0 {
		m.MaxBytes = 100 << 20
	}
	if m.MaxRedirects == 0 {
		m.MaxRedirects = 5
	}
	if m.Timeout == 0 {
		m.Timeout = 60 * time.Second
	}
}

func applyPublishDefaults(p *PublishConfig) {
	if p.PriceOnProperty == nil && p.QuantityOnProperty == nil && p.SKUOnProperty == nil {
		p.PriceOnProperty = []int64{DefaultPricePropertyID}
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
	if l.MaxSizeMB == 0 {
		l.MaxSizeMB = 100
	}
	if l.MaxBackups == 0 {
		l.MaxBackups = 3
	}
	if l.MaxAgeDays == 0 {
		l.MaxAgeDays = 28
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Etsy.APIKey == "" {
		errs = append(errs, fmt.Errorf("etsy.api_key (or %s) is required", EnvAPIKey))
	}

	if cfg.Etsy.CallbackURL == "" {
		errs = append(errs, fmt.Errorf("etsy.callback_url (or %s) is required", EnvCallbackURL))
	} else if u, err := url.Parse(cfg.Etsy.CallbackURL); err != nil || !u.IsAbs() || u.Host == "" {
		errs = append(errs, fmt.Errorf("etsy.callback_url must be an absolute URL (got %q)", cfg.Etsy.CallbackURL))
	}

	if cfg.Etsy.CodeVerifier != "" {
		if err := etsy.ValidateVerifier(cfg.Etsy.CodeVerifier); err != nil {
			errs = append(errs, fmt.Errorf("etsy.code_verifier: %w", err))
		}
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}

	if cfg.Etsy.RateLimit.PerSecond < 0 || cfg.Etsy.RateLimit.DailyLimit < 0 {
		errs = append(errs, fmt.Errorf("etsy.rate_limit values must not be negative"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
