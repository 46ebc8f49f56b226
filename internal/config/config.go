package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure: where the
// detection process lives, where snapshots are stored, and presentation
// settings. Binding and sensitivity values are not config; they live in
// their own stores.
type Config struct {
	Bridge struct {
		Endpoint string `yaml:"endpoint"` // Websocket address of the detection process
	} `yaml:"bridge"`
	Data struct {
		Dir string `yaml:"dir"` // Directory holding binding/sensitivity snapshots
	} `yaml:"data"`
	Settings struct {
		Debug bool `yaml:"debug"` // Enable debug logging
	} `yaml:"settings"`
}

// DefaultEndpoint is the detection process's well-known local address.
const DefaultEndpoint = "ws://localhost:8765"

// LoadConfig loads configuration from the default location
// (~/.config/motionplay/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "motionplay", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Bridge.Endpoint != "" {
		cfg.Bridge.Endpoint = tempCfg.Bridge.Endpoint
	}
	if tempCfg.Data.Dir != "" {
		cfg.Data.Dir = tempCfg.Data.Dir
	}
	cfg.Settings.Debug = tempCfg.Settings.Debug

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Bridge.Endpoint = DefaultEndpoint
	cfg.Data.Dir = "" // Resolved to the per-user data directory at use time
	cfg.Settings.Debug = false
	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	u, err := url.Parse(c.Bridge.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid bridge endpoint %q: %w", c.Bridge.Endpoint, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("bridge endpoint must be a ws:// or wss:// address, got %q", c.Bridge.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("bridge endpoint %q has no host", c.Bridge.Endpoint)
	}

	return nil
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig(dataDir string) *Config {
	cfg := defaultConfig()
	cfg.Data.Dir = dataDir
	cfg.Settings.Debug = true
	return cfg
}
