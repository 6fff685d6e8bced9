package runner

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// SuiteConfig names one ordered suite and the test pattern that runs it.
type SuiteConfig struct {
	Name        string `toml:"name"`
	Run         string `toml:"run"`
	Description string `toml:"description"`
}

// Config holds the runner's settings, loaded from suites.toml.
type Config struct {
	Retry struct {
		// Attempts bounds the retry-with-backoff at the suite level.
		// Individual steps are never retried.
		Attempts       int `toml:"attempts"`
		BackoffSeconds int `toml:"backoff_seconds"`
	} `toml:"retry"`
	Output struct {
		ResultsBaseDir string `toml:"results_base_dir"`
	} `toml:"output"`
	Suites []SuiteConfig `toml:"suites"`
}

// DefaultSuites returns the five suites in their dependency order. Each
// depends on artifacts (session state, scratch files) produced by the
// ones before it.
func DefaultSuites() []SuiteConfig {
	return []SuiteConfig{
		{Name: "login", Run: "^TestLoginAndStoreSession$", Description: "authenticate primary user and store session state"},
		{Name: "project", Run: "^TestProjectCreation$", Description: "create a project and persist its identifiers"},
		{Name: "jobs", Run: "^TestJobAndBidFlow$", Description: "configure a job, create bids, invite vendors"},
		{Name: "vendor", Run: "^TestVendorBidAcceptance$", Description: "accept and resubmit the bid as the vendor identity"},
		{Name: "award", Run: "^TestBidAwardAndContract$", Description: "award a bid and finalize the contract"},
	}
}

// DefaultConfig returns the runner defaults used when no suites.toml exists.
func DefaultConfig() *Config {
	var config Config
	config.Retry.Attempts = 1
	config.Retry.BackoffSeconds = 15
	config.Output.ResultsBaseDir = "test-results"
	config.Suites = DefaultSuites()
	return &config
}

// LoadConfig loads the runner configuration from a TOML file, filling
// in defaults for anything left unset. A missing file yields the
// defaults rather than an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Retry.Attempts < 1 {
		config.Retry.Attempts = 1
	}
	if config.Retry.BackoffSeconds < 1 {
		config.Retry.BackoffSeconds = 15
	}
	if config.Output.ResultsBaseDir == "" {
		config.Output.ResultsBaseDir = "test-results"
	}
	if len(config.Suites) == 0 {
		config.Suites = DefaultSuites()
	}

	return &config, nil
}

// Select resolves requested suite names to ordered suite configs.
// Requests may be suite names, 1-based positions, or "all"/empty for
// everything. Order always follows the configured sequence, never the
// request, because later suites depend on earlier ones.
func (c *Config) Select(requests []string) ([]SuiteConfig, error) {
	if len(requests) == 0 {
		return c.Suites, nil
	}

	wanted := make(map[int]bool, len(requests))
	for _, request := range requests {
		if request == "all" {
			return c.Suites, nil
		}

		if n, err := strconv.Atoi(request); err == nil {
			if n < 1 || n > len(c.Suites) {
				return nil, fmt.Errorf("suite %d out of range (have %d suites)", n, len(c.Suites))
			}
			wanted[n-1] = true
			continue
		}

		found := false
		for i, suite := range c.Suites {
			if suite.Name == request {
				wanted[i] = true
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown suite %q", request)
		}
	}

	var selected []SuiteConfig
	for i, suite := range c.Suites {
		if wanted[i] {
			selected = append(selected, suite)
		}
	}
	return selected, nil
}
