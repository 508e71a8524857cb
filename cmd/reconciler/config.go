package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the reconciler daemon's YAML configuration.
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url"`
		Token   string `yaml:"token,omitempty"`
	} `yaml:"api"`
	Reconciler struct {
		Interval string `yaml:"interval,omitempty"` // e.g. "60s"
	} `yaml:"reconciler"`
	Search struct {
		Window string `yaml:"window,omitempty"` // e.g. "300ms"
	} `yaml:"search"`
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config %s: api.base_url is required", path)
	}
	// Token may come from the environment instead of the file.
	if cfg.API.Token == "" {
		cfg.API.Token = os.Getenv("LACARTA_API_TOKEN")
	}
	return cfg, nil
}

func (c *Config) interval() (time.Duration, error) {
	if c.Reconciler.Interval == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Reconciler.Interval)
}

func (c *Config) window() (time.Duration, error) {
	if c.Search.Window == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Search.Window)
}
