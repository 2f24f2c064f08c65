package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port               int      `mapstructure:"port"`
	SpreadsheetID      string   `mapstructure:"spreadsheet_id"`
	CredentialsFile    string   `mapstructure:"credentials_file"`
	AuditDBPath        string   `mapstructure:"audit_db_path"`
	LogLevel           string   `mapstructure:"log_level"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
	CacheTTLSec        int      `mapstructure:"cache_ttl_sec"`        // Read-cache freshness window; 0 = always refetch
	RequestTimeoutSec  int      `mapstructure:"request_timeout_sec"`  // HTTP read/write; 0 = server default
	ShutdownTimeoutSec int      `mapstructure:"shutdown_timeout_sec"` // Graceful shutdown wait
	PageSize           int      `mapstructure:"page_size"`            // Default page size for list endpoints
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/gridcrm/")
	viper.AddConfigPath("$HOME/.gridcrm")
	viper.AddConfigPath(".")

	// Defaults
	viper.SetDefault("port", 8080)
	viper.SetDefault("spreadsheet_id", "")
	viper.SetDefault("credentials_file", "")
	viper.SetDefault("audit_db_path", "./gridcrm-audit.db")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("allowed_origins", []string{"*"})
	viper.SetDefault("cache_ttl_sec", 300) // five minutes; the sheet API is slow and rate-limited
	viper.SetDefault("request_timeout_sec", 30)
	viper.SetDefault("shutdown_timeout_sec", 15)
	viper.SetDefault("page_size", 50)

	// Environment variables
	viper.SetEnvPrefix("GRIDCRM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; using defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
