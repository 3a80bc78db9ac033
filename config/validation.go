package config

import (
	"fmt"
	"strings"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateFetchConfig(&config.Fetch); err != nil {
		return fmt.Errorf("fetch config validation failed: %w", err)
	}

	if err := validateSyncConfig(&config.Sync); err != nil {
		return fmt.Errorf("sync config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if config.Discovery.RobotsCacheSize <= 0 {
		return fmt.Errorf("discovery config validation failed: robots cache size must be positive, got %d", config.Discovery.RobotsCacheSize)
	}

	if r := config.Telemetry.SampleRatio; r < 0 || r > 1 {
		return fmt.Errorf("telemetry config validation failed: sample ratio must be between 0 and 1, got %v", r)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got read=%v write=%v idle=%v",
			config.ReadTimeout, config.WriteTimeout, config.IdleTimeout)
	}

	return nil
}

func validateFetchConfig(config *FetchConfig) error {
	if config.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %v", config.Timeout)
	}
	if config.HostInterval < 0 {
		return fmt.Errorf("host interval must not be negative, got %v", config.HostInterval)
	}
	if config.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive, got %d", config.MaxBodyBytes)
	}
	return nil
}

func validateSyncConfig(config *SyncConfig) error {
	if config.MaxArticlesPerFeed <= 0 {
		return fmt.Errorf("max articles per feed must be positive, got %d", config.MaxArticlesPerFeed)
	}
	if config.InitialArticlesPerFeed <= 0 || config.InitialArticlesPerFeed > config.MaxArticlesPerFeed {
		return fmt.Errorf("initial articles per feed must be between 1 and %d, got %d",
			config.MaxArticlesPerFeed, config.InitialArticlesPerFeed)
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", config.BatchSize)
	}
	if config.JobEnabled && config.Interval <= 0 {
		return fmt.Errorf("sync interval must be positive when the job is enabled, got %v", config.Interval)
	}
	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}
