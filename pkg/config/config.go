package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPathHint is the config location as shown in user-facing messages
const DefaultPathHint = "~/.repoman/config.yaml"

// Config represents the repoman configuration
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
}

// GitHubConfig holds the GitHub credential and account settings
type GitHubConfig struct {
	// Token is the personal access token. The GITHUB_TOKEN environment
	// variable takes precedence when set.
	Token string `yaml:"token,omitempty"`
	// Owner optionally pins the account name, skipping the identity lookup.
	Owner string `yaml:"owner,omitempty"`
}

// LoadConfig loads configuration from the default location. A .env file in
// the working directory is loaded first so GITHUB_TOKEN can live there too.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadConfigFromPath(configPath)
}

// LoadConfigFromPath loads configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil // Return empty config if file doesn't exist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves configuration to the default location
func (c *Config) SaveConfig() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveConfigToPath(configPath)
}

// SaveConfigToPath saves configuration to a specific path
func (c *Config) SaveConfigToPath(path string) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Token lives in this file; keep it owner-readable.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".repoman", "config.yaml"), nil
}

// Validate rejects malformed values. Absent fields are fine: the token may
// come from the environment instead.
func (c *Config) Validate() error {
	if c.GitHub.Token != "" && strings.ContainsAny(c.GitHub.Token, " \t\n") {
		return fmt.Errorf("github.token must not contain whitespace")
	}

	if c.GitHub.Owner != "" && strings.ContainsAny(c.GitHub.Owner, " \t\n/") {
		return fmt.Errorf("github.owner %q is not a valid account name", c.GitHub.Owner)
	}

	return nil
}
