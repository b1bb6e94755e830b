package config

import (
	"time"

	"github.com/heartmarshall/synonymer/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Synonyms  SynonymsConfig  `yaml:"synonyms"`
	Sources   SourcesConfig   `yaml:"sources"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SynonymsConfig holds the lookup policy. Defaults apply until a host-owned
// settings file at SettingsPath overrides them.
type SynonymsConfig struct {
	Defaults      domain.Settings `yaml:"defaults"`
	SettingsPath  string          `yaml:"settings_path"  env:"SYNONYMS_SETTINGS_PATH"`
	WatchSettings bool            `yaml:"watch_settings" env:"SYNONYMS_WATCH_SETTINGS"`
}

// SourcesConfig holds remote source settings.
type SourcesConfig struct {
	FetchTimeout        time.Duration `yaml:"fetch_timeout"         env:"SOURCES_FETCH_TIMEOUT"         env-default:"10s"`
	UserAgent           string        `yaml:"user_agent"            env:"SOURCES_USER_AGENT"            env-default:"Mozilla/5.0 (compatible; ObsidianSynonymPlugin/1.0)"`
	SynonymerURL        string        `yaml:"synonymer_url"         env:"SOURCES_SYNONYMER_URL"         env-default:"https://synonymer.se"`
	SvenskaSynonymerURL string        `yaml:"svenska_synonymer_url" env:"SOURCES_SVENSKA_SYNONYMER_URL" env-default:"https://svenska-synonymer.se"`
	SynonymlexikonURL   string        `yaml:"synonymlexikon_url"    env:"SOURCES_SYNONYMLEXIKON_URL"    env-default:"https://www.synonymlexikon.se"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig bounds inbound API requests per client IP.
// Zero RequestsPerMinute disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}
