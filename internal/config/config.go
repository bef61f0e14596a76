package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	CredentialsBackendFile     = "file"
	CredentialsBackendPostgres = "postgres"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	TracingEnabled bool `toml:"tracing_enabled"`

	// credentials
	CredentialsBackend string `toml:"credentials_backend"`
	CredentialsPath    string `toml:"credentials_path"`

	// sessions
	SessionBackend     string `toml:"session_backend"`
	SessionCookieName  string `toml:"session_cookie_name"`
	SessionCacheSizeMB int    `toml:"session_cache_size_mb"`
	// cookies only sent over https when set
	SessionCookieSecure bool `toml:"session_cookie_secure"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	return cfg, nil
}

func IsProduction(env string) bool {
	switch strings.ToLower(env) {
	case "prod", "production":
		return true
	}
	return false
}

// Load reads the TOML file at path and returns the validated config section
// for the given environment.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return fromToml(&t, env)
}

func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.CredentialsBackend == "" {
		c.CredentialsBackend = CredentialsBackendFile
	}
	if c.SessionBackend == "" {
		c.SessionBackend = SessionBackendMemory
	}
	if c.SessionCookieName == "" {
		c.SessionCookieName = "weblogin-session"
	}
	if c.SessionCacheSizeMB <= 0 {
		c.SessionCacheSizeMB = 8
	}
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	switch c.CredentialsBackend {
	case CredentialsBackendFile:
		if c.CredentialsPath == "" {
			return fmt.Errorf("credentials_path must be set for the %s backend", c.CredentialsBackend)
		}
	case CredentialsBackendPostgres:
		if c.PostgresHost == "" || c.PostgresDBName == "" {
			return fmt.Errorf("postgres_host and postgres_db_name must be set for the %s backend", c.CredentialsBackend)
		}
	default:
		return fmt.Errorf("unknown credentials backend: %s", c.CredentialsBackend)
	}

	switch c.SessionBackend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			return fmt.Errorf("redis_host and redis_port must be set for the %s session backend", c.SessionBackend)
		}
	default:
		return fmt.Errorf("unknown session backend: %s", c.SessionBackend)
	}

	return nil
}
