package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config defines the spent-time tool configuration.
type Config struct {
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Report ReportConfig `yaml:"report"`
}

type DBConfig struct {
	Path string `yaml:"path" env:"SPENTTIME_DB_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"SPENTTIME_LOG_LEVEL"`
}

type ReportConfig struct {
	// DefaultDays is the trailing report window used when no dates are given.
	DefaultDays int `yaml:"default_days" env:"SPENTTIME_REPORT_DAYS"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment values win over the file.
func Load() (Config, error) {
	cfg := Config{
		DB:     DBConfig{Path: "spenttime.db"},
		Log:    LogConfig{Level: "info"},
		Report: ReportConfig{DefaultDays: 7},
	}

	if path := os.Getenv("SPENTTIME_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Report.DefaultDays <= 0 {
		return Config{}, fmt.Errorf("report.default_days must be positive, got %d", cfg.Report.DefaultDays)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
