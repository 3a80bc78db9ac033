package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Redis     RedisConfig     `json:"redis"`
	Fetch     FetchConfig     `json:"fetch"`
	Discovery DiscoveryConfig `json:"discovery"`
	Sync      SyncConfig      `json:"sync"`
	Unsplash  UnsplashConfig  `json:"unsplash"`
	Logging   LoggingConfig   `json:"logging"`
	Security  SecurityConfig  `json:"security"`
	Telemetry TelemetryConfig `json:"telemetry"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"300s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	URL               string        `json:"-" env:"DATABASE_URL"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"10"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

// RedisConfig points at the out-of-line article content store. An empty URL
// keeps article bodies inline in Postgres.
type RedisConfig struct {
	URL        string        `json:"-" env:"REDIS_URL"`
	ContentTTL time.Duration `json:"content_ttl" env:"REDIS_CONTENT_TTL" default:"0s"`
}

type FetchConfig struct {
	Timeout      time.Duration `json:"timeout" env:"FETCH_TIMEOUT" default:"30s"`
	UserAgent    string        `json:"user_agent" env:"FETCH_USER_AGENT" default:"Mozilla/5.0 (compatible; RSS Reader/1.0)"`
	HostInterval time.Duration `json:"host_interval" env:"FETCH_HOST_INTERVAL" default:"1s"`
	MaxBodyBytes int64         `json:"max_body_bytes" env:"FETCH_MAX_BODY_BYTES" default:"10485760"`
}

type DiscoveryConfig struct {
	HeadTimeout     time.Duration `json:"head_timeout" env:"DISCOVERY_HEAD_TIMEOUT" default:"5s"`
	RobotsCacheSize int           `json:"robots_cache_size" env:"DISCOVERY_ROBOTS_CACHE_SIZE" default:"256"`
	RespectRobots   bool          `json:"respect_robots" env:"DISCOVERY_RESPECT_ROBOTS" default:"true"`
}

type SyncConfig struct {
	MaxArticlesPerFeed     int           `json:"max_articles_per_feed" env:"SYNC_MAX_ARTICLES_PER_FEED" default:"500"`
	InitialArticlesPerFeed int           `json:"initial_articles_per_feed" env:"SYNC_INITIAL_ARTICLES_PER_FEED" default:"50"`
	BatchSize              int           `json:"batch_size" env:"SYNC_BATCH_SIZE" default:"5"`
	Interval               time.Duration `json:"interval" env:"SYNC_INTERVAL" default:"30m"`
	JobEnabled             bool          `json:"job_enabled" env:"SYNC_JOB_ENABLED" default:"true"`
}

// UnsplashConfig enables the stock image fallback when AccessKey is set.
type UnsplashConfig struct {
	AccessKey string        `json:"-" env:"UNSPLASH_ACCESS_KEY"`
	BaseURL   string        `json:"base_url" env:"UNSPLASH_API_URL" default:"https://api.unsplash.com"`
	Timeout   time.Duration `json:"timeout" env:"UNSPLASH_TIMEOUT" default:"5s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type SecurityConfig struct {
	AllowLocalhost bool `json:"allow_localhost" env:"SSRF_ALLOW_LOCALHOST" default:"false"`
}

// TelemetryConfig controls tracing. Sampled spans put trace and span IDs in
// the logs; an OTLP endpoint additionally exports spans and log records.
type TelemetryConfig struct {
	Enabled      bool    `json:"enabled" env:"OTEL_ENABLED" default:"true"`
	ServiceName  string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"reader"`
	SampleRatio  float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
	OTLPEndpoint string  `json:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// NewConfig resolves every tagged field through v, falling back to the
// field's default, and validates the result.
func NewConfig(v *viper.Viper) (*Config, error) {
	config := &Config{}

	if err := loadFromViper(v, config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load reads an optional config file and the process environment.
// Environment variables win over file values.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("reader")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/reader")
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return NewConfig(v)
}
