package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		JWTSecret       string `yaml:"jwt_secret"`
		SessionTTLHours int64  `yaml:"session_ttl_hours"`
	} `yaml:"auth"`
	Playback struct {
		TokenTTLMinutes int64 `yaml:"token_ttl_minutes"`
		DashboardLimit  int   `yaml:"dashboard_limit"`
	} `yaml:"playback"`
}

// SessionTTL returns the configured session token lifetime.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Auth.SessionTTLHours) * time.Hour
}

// PlaybackTokenTTL returns the configured playback token lifetime.
func (c *Config) PlaybackTokenTTL() time.Duration {
	return time.Duration(c.Playback.TokenTTLMinutes) * time.Minute
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if config.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret must be set")
	}

	return config, nil
}
