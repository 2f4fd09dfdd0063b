// Package config provides configuration loading and validation for the CLI
// and the API server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values fall back to environment
// variables or defaults.
type Config struct {
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	Port           int    `json:"port,omitempty"`            // API server listen port
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL; empty means in-memory sessions
	TotalQuestions int    `json:"total_questions,omitempty"` // Questions per interview
	JWTSecret      string `json:"jwt_secret,omitempty"`      // Session token signing secret
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
}

// Default values applied by ApplyEnv when neither the file nor the
// environment provides one.
const (
	DefaultPort           = 8080
	DefaultTotalQuestions = 10
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv fills empty fields from environment variables and applies
// defaults. File values win over the environment.
func (c *Config) ApplyEnv() error {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.JWTSecret == "" {
		c.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if c.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return fmt.Errorf("invalid PORT: %v", err)
			}
			c.Port = port
		}
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.TotalQuestions == 0 {
		c.TotalQuestions = DefaultTotalQuestions
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.TotalQuestions < 1 {
		return fmt.Errorf("config error: 'total_questions' must be at least 1, got %d", c.TotalQuestions)
	}
	return nil
}
