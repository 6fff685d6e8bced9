package config

import (
	"fmt"
	"os"
)

// AppConfig holds the environment-specific URLs the suites drive.
type AppConfig struct {
	LoginURL     string
	DashboardURL string
	DataDir      string
	ResultsDir   string
}

// LoadAppConfig loads application configuration from environment variables
func LoadAppConfig() (*AppConfig, error) {
	config := AppConfig{
		LoginURL:     os.Getenv("LOGIN_URL"),
		DashboardURL: os.Getenv("DASHBOARD_URL"),
		DataDir:      os.Getenv("DATA_DIR"),
		ResultsDir:   os.Getenv("RESULTS_DIR"),
	}

	// Validate required fields
	if config.LoginURL == "" {
		return nil, fmt.Errorf("LOGIN_URL is required")
	}
	if config.DashboardURL == "" {
		return nil, fmt.Errorf("DASHBOARD_URL is required")
	}
	if config.DataDir == "" {
		config.DataDir = "data" // Default to ./data
	}
	if config.ResultsDir == "" {
		config.ResultsDir = "test-results" // Default artifact location
	}

	return &config, nil
}
