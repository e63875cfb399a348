package config

// Config represents the complete configuration structure
type Config struct {
	Bloom   BloomConfig   `mapstructure:"bloom"`
	Bulk    BulkConfig    `mapstructure:"bulk"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BloomConfig holds Bloom Growth API connection details
type BloomConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
	UserID int64  `mapstructure:"user_id"`
}

// BulkConfig contains batch operation settings
type BulkConfig struct {
	MaxConcurrent int `mapstructure:"max_concurrent"`
}

// FilterConfig contains named filter definitions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
