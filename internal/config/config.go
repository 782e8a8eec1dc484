package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultEnv             = "development"
	defaultHTTPHost        = "0.0.0.0"
	defaultHTTPPort        = 8080
	defaultShutdownTimeout = 10 * time.Second

	defaultLCDURL        = "https://sentry.lcd.injective.network:443"
	defaultIndexerURL    = "https://sentry.exchange.grpc-web.injective.network"
	defaultHealthTimeout = 8 * time.Second
	defaultDataTimeout   = 12 * time.Second
	defaultUserAgent     = "ninja-api-forge/1.0"

	defaultLogLevel  = "info"
	defaultLogFormat = "json"
	defaultLogOutput = "stdout"
)

// Config keeps the runtime configuration for the service.
type Config struct {
	Env      string         `yaml:"env"`
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Docs     DocsConfig     `yaml:"docs"`
}

// HTTPConfig holds HTTP server related settings.
type HTTPConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr renders the listen address in host:port form.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// UpstreamConfig describes the Injective endpoints the gateway forwards to.
type UpstreamConfig struct {
	LCDURL        string        `yaml:"lcd_url"`
	IndexerURL    string        `yaml:"indexer_url"`
	HealthTimeout time.Duration `yaml:"health_timeout"`
	DataTimeout   time.Duration `yaml:"data_timeout"`
	UserAgent     string        `yaml:"user_agent"`
}

// LogConfig stores logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	MaxAge int    `yaml:"max_age"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DocsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Env: defaultEnv,
		HTTP: HTTPConfig{
			Host:            defaultHTTPHost,
			Port:            defaultHTTPPort,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Upstream: UpstreamConfig{
			LCDURL:        defaultLCDURL,
			IndexerURL:    defaultIndexerURL,
			HealthTimeout: defaultHealthTimeout,
			DataTimeout:   defaultDataTimeout,
			UserAgent:     defaultUserAgent,
		},
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Output: defaultLogOutput,
		},
		CORS: CORSConfig{AllowedOrigins: []string{"*"}},
		Docs: DocsConfig{Enabled: true},
	}
}

// Load builds Config from defaults, an optional YAML file (CONFIG_FILE)
// and environment variables, in that order. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path := getString("CONFIG_FILE", ""); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var err error

	c.Env = getString("APP_ENV", c.Env)
	c.HTTP.Host = getString("HTTP_HOST", c.HTTP.Host)
	if c.HTTP.Port, err = getInt("HTTP_PORT", c.HTTP.Port); err != nil {
		return fmt.Errorf("parse HTTP_PORT: %w", err)
	}
	if c.HTTP.ShutdownTimeout, err = getDuration("HTTP_SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout); err != nil {
		return fmt.Errorf("parse HTTP_SHUTDOWN_TIMEOUT: %w", err)
	}

	c.Upstream.LCDURL = getString("INJECTIVE_LCD_URL", c.Upstream.LCDURL)
	c.Upstream.IndexerURL = getString("INJECTIVE_INDEXER_URL", c.Upstream.IndexerURL)
	c.Upstream.UserAgent = getString("UPSTREAM_USER_AGENT", c.Upstream.UserAgent)
	if c.Upstream.HealthTimeout, err = getDuration("UPSTREAM_HEALTH_TIMEOUT", c.Upstream.HealthTimeout); err != nil {
		return fmt.Errorf("parse UPSTREAM_HEALTH_TIMEOUT: %w", err)
	}
	if c.Upstream.DataTimeout, err = getDuration("UPSTREAM_DATA_TIMEOUT", c.Upstream.DataTimeout); err != nil {
		return fmt.Errorf("parse UPSTREAM_DATA_TIMEOUT: %w", err)
	}

	c.Log.Level = getString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getString("LOG_FORMAT", c.Log.Format)
	c.Log.Output = getString("LOG_OUTPUT", c.Log.Output)
	if c.Log.MaxAge, err = getInt("LOG_MAX_AGE", c.Log.MaxAge); err != nil {
		return fmt.Errorf("parse LOG_MAX_AGE: %w", err)
	}

	c.CORS.AllowedOrigins = getList("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)
	if c.Docs.Enabled, err = getBool("SWAGGER_ENABLED", c.Docs.Enabled); err != nil {
		return fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}
	return nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port %d out of range", c.HTTP.Port)
	}
	if c.Upstream.HealthTimeout <= 0 || c.Upstream.DataTimeout <= 0 {
		return errors.New("upstream timeouts must be positive")
	}
	for name, raw := range map[string]string{
		"lcd url":     c.Upstream.LCDURL,
		"indexer url": c.Upstream.IndexerURL,
	} {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%s %q must be an absolute http(s) url", name, raw)
		}
	}
	return nil
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to int: %w", key, value, err)
	}
	return parsed, nil
}

func getBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("convert %s value %q to bool: %w", key, value, err)
	}
	return parsed, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to duration: %w", key, value, err)
	}
	return parsed, nil
}

func getList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}

	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
