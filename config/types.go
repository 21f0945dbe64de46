package config

// Config represents the complete configuration structure
type Config struct {
	Connection     ConnectionConfig `mapstructure:"connection"`
	ArtistDefaults *ArtistDefaults  `mapstructure:"artist_defaults"`
	Monitor        MonitorConfig    `mapstructure:"monitor"`
	Logging        LoggingConfig    `mapstructure:"logging"`
}

// ConnectionConfig holds Lidarr API connection details and request-engine
// tuning.
type ConnectionConfig struct {
	BaseURL       string  `mapstructure:"base_url"`
	APIKey        string  `mapstructure:"api_key"`
	Timeout       int     `mapstructure:"timeout"`
	Retries       int     `mapstructure:"retry_total"`
	BackoffFactor float64 `mapstructure:"retry_backoff_factor"`
	RateLimit     float64 `mapstructure:"rate_limit_per_second"`
}

// ArtistDefaults are the saved defaults applied when adding artists.
type ArtistDefaults struct {
	RootFolderPath     string `mapstructure:"root_folder_path" json:"root_folder_path"`
	QualityProfileID   int64  `mapstructure:"quality_profile_id" json:"quality_profile_id"`
	MetadataProfileID  int64  `mapstructure:"metadata_profile_id" json:"metadata_profile_id"`
	Monitored          bool   `mapstructure:"monitored" json:"monitored"`
	AlbumMonitorOption string `mapstructure:"album_monitor_option" json:"album_monitor_option"`
	TagIDs             []int  `mapstructure:"tag_ids" json:"tag_ids"`
}

// MonitorConfig contains health-check thresholds.
type MonitorConfig struct {
	DiskThresholdPercent float64 `mapstructure:"disk_threshold_percent"`
	QueueWarningSize     int     `mapstructure:"queue_warning_size"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
