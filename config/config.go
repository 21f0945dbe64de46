package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file. A missing config file is not an
// error: every setting has a default, and the connection can be supplied on
// the command line instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("json")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("json")

		// Check current directory first
		v.AddConfigPath(".")

		// Check the user config directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "lidarrctl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/lidarrctl/")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
			// No config file found; defaults apply.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Request engine defaults
	v.SetDefault("connection.timeout", 60)
	v.SetDefault("connection.retry_total", 3)
	v.SetDefault("connection.retry_backoff_factor", 0.3)
	v.SetDefault("connection.rate_limit_per_second", 2.0)

	// Monitoring defaults
	v.SetDefault("monitor.disk_threshold_percent", 90.0)
	v.SetDefault("monitor.queue_warning_size", 50)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Connection.Timeout < 0 {
		return fmt.Errorf("connection.timeout must not be negative")
	}

	if cfg.Connection.Retries < 0 {
		return fmt.Errorf("connection.retry_total must not be negative")
	}

	if cfg.Connection.BackoffFactor < 0 {
		return fmt.Errorf("connection.retry_backoff_factor must not be negative")
	}

	if cfg.Monitor.DiskThresholdPercent < 0 || cfg.Monitor.DiskThresholdPercent > 100 {
		return fmt.Errorf("monitor.disk_threshold_percent must be between 0 and 100")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(home, ".config", "lidarrctl", "config.json")
}

// loadDocument reads the config file as a generic JSON document so saves
// preserve sections this package does not know about. A missing or corrupt
// file yields an empty document.
func loadDocument(path string) map[string]any {
	doc := map[string]any{}
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &doc)
	}
	return doc
}

// writeDocument persists the config document, creating the directory as
// needed. The file holds an API key, so it is not group readable.
func writeDocument(path string, doc map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// SaveArtistDefaults writes artist-addition defaults into the config document
// at path, preserving everything else stored there.
func SaveArtistDefaults(path string, defaults *ArtistDefaults) error {
	if path == "" {
		path = DefaultPath()
	}

	doc := loadDocument(path)
	doc["artist_defaults"] = defaults

	return writeDocument(path, doc)
}

// SaveConnection writes the connection settings into the config document at
// path, preserving everything else stored there.
func SaveConnection(path, baseURL, apiKey string) error {
	if path == "" {
		path = DefaultPath()
	}

	doc := loadDocument(path)
	conn, _ := doc["connection"].(map[string]any)
	if conn == nil {
		conn = map[string]any{}
	}
	conn["base_url"] = baseURL
	conn["api_key"] = apiKey
	doc["connection"] = conn

	return writeDocument(path, doc)
}
