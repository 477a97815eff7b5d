// Package config handles configuration for procchat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognized on top of the config file.
const (
	EnvBaseURL = "PROCCHAT_BASE_URL"
	EnvUserID  = "PROCCHAT_USER_ID"
)

// DefaultUserID is the placeholder user identifier sent with every chat
// request. The backend keys its session state on it.
const DefaultUserID = "default"

// Config represents the user configuration
type Config struct {
	// BaseURL is the root of the assistants backend, e.g. "http://localhost:8000".
	BaseURL string `json:"base_url"`
	// UserID is sent as user_id in chat requests.
	UserID string `json:"user_id"`
	// DefaultAssistant selects an assistant by id or name when no flag is given.
	DefaultAssistant string `json:"default_assistant,omitempty"`
	// Verbose enables diagnostic output (completed slots, request timing).
	Verbose bool `json:"verbose"`
	// CopyToClipboard copies one-shot replies to the clipboard.
	CopyToClipboard bool `json:"copy_to_clipboard"`
	// MarkdownStyle is the glamour style for rendering prose replies ("dark", "light").
	MarkdownStyle string `json:"markdown_style,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		UserID:        DefaultUserID,
		MarkdownStyle: "dark",
	}
}

// LoadEnv loads a .env file from the working directory, if present.
// Missing files are not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".procchat"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk and applies environment
// overrides. A missing config file yields the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return applyEnv(cfg), err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return applyEnv(cfg), fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return applyEnv(DefaultConfig()), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.UserID == "" {
		cfg.UserID = DefaultUserID
	}

	return applyEnv(cfg), nil
}

// applyEnv overlays environment variables on top of cfg.
func applyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvUserID)); v != "" {
		cfg.UserID = v
	}
	return cfg
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NormalizeBaseURL strips a trailing slash so endpoint paths can be joined
// with a leading one.
func NormalizeBaseURL(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}
