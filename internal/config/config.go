package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/JonnyWalker81/workwell/backend/internal/logger"
)

// Storage backends
const (
	StorageSupabase = "supabase"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMySQL    = "mysql"
)

// Cache backends
const (
	CacheMemory = "memory"
	CacheSQL    = "sql"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port              string        `mapstructure:"port"`
	Env               string        `mapstructure:"env"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig selects the log level and output format
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SupabaseConfig holds Supabase-specific configuration
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// StorageConfig selects where check-ins and alerts live
type StorageConfig struct {
	Backend     string `mapstructure:"backend"`
	DSN         string `mapstructure:"dsn"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// IsSQL reports whether storage goes through database/sql
func (s StorageConfig) IsSQL() bool {
	switch s.Backend {
	case StorageSQLite, StoragePostgres, StorageMySQL:
		return true
	}
	return false
}

// CacheConfig configures the result cache store
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Backend         string        `mapstructure:"backend"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
}

// AnalysisConfig controls the burnout prediction window
type AnalysisConfig struct {
	LookbackDays int `mapstructure:"lookback_days"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.service_key", "")

	v.SetDefault("storage.backend", StorageSupabase)
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.auto_migrate", false)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.backend", CacheMemory)
	v.SetDefault("cache.cleanup_interval", time.Minute)

	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("cors.allowed_origins", []string{})

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "workwell")

	v.SetDefault("analysis.lookback_days", 30)
}

// Load reads configuration from defaults, an optional config file and
// environment variables, in increasing precedence. path names an explicit
// config file; when empty config.yaml is looked up in . and ./config.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// WORKWELL_RATE_LIMIT_REQUESTS -> rate_limit.requests
	v.SetEnvPrefix("WORKWELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to non-prefixed environment variables for hosting platforms
	_ = v.BindEnv("server.port", "WORKWELL_SERVER_PORT", "PORT")
	_ = v.BindEnv("supabase.url", "WORKWELL_SUPABASE_URL", "SUPABASE_URL")
	_ = v.BindEnv("supabase.service_key", "WORKWELL_SUPABASE_SERVICE_KEY", "SUPABASE_SERVICE_KEY")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	config.Storage.Backend = strings.ToLower(strings.TrimSpace(config.Storage.Backend))
	config.Cache.Backend = strings.ToLower(strings.TrimSpace(config.Cache.Backend))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present and
// consistent
func (c *Config) Validate() error {
	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.Supabase.ServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}

	if c.Storage.Backend != StorageSupabase && !c.Storage.IsSQL() {
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.IsSQL() && c.Storage.DSN == "" {
		return fmt.Errorf("storage.dsn is required for the %s backend", c.Storage.Backend)
	}

	switch c.Cache.Backend {
	case CacheMemory:
	case CacheSQL:
		if !c.Storage.IsSQL() {
			return fmt.Errorf("cache backend %q requires a SQL storage backend", CacheSQL)
		}
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}

	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be positive, got %d", c.RateLimit.Requests)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive, got %s", c.RateLimit.Window)
	}
	if c.Analysis.LookbackDays <= 0 {
		return fmt.Errorf("analysis.lookback_days must be positive, got %d", c.Analysis.LookbackDays)
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}

	return nil
}

// LoggerConfig converts the log section for logger.NewSlogLogger. Validate
// has already checked the level.
func (c *Config) LoggerConfig() logger.Config {
	cfg := logger.DefaultConfig()
	if level, err := logger.ParseLevel(c.Log.Level); err == nil {
		cfg.Level = level
	}
	cfg.Format = c.Log.Format
	return cfg
}
