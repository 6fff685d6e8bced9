package runner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "suites.toml"))
	require.NoError(t, err)

	assert.Equal(t, 1, config.Retry.Attempts)
	assert.Equal(t, "test-results", config.Output.ResultsBaseDir)
	require.Len(t, config.Suites, 5)
	assert.Equal(t, "login", config.Suites[0].Name)
	assert.Equal(t, "award", config.Suites[4].Name)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suites.toml")
	body := `
[retry]
attempts = 3
backoff_seconds = 5

[output]
results_base_dir = "artifacts"

[[suites]]
name = "smoke"
run = "^TestSmoke$"
description = "smoke only"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, config.Retry.Attempts)
	assert.Equal(t, 5, config.Retry.BackoffSeconds)
	assert.Equal(t, "artifacts", config.Output.ResultsBaseDir)
	require.Len(t, config.Suites, 1)
	assert.Equal(t, "^TestSmoke$", config.Suites[0].Run)
}

func TestLoadConfigRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suites.toml")
	require.NoError(t, os.WriteFile(path, []byte("[retry\nattempts = "), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	config := DefaultConfig()

	t.Run("empty request selects everything in order", func(t *testing.T) {
		suites, err := config.Select(nil)
		require.NoError(t, err)
		assert.Len(t, suites, 5)
	})

	t.Run("all keyword selects everything", func(t *testing.T) {
		suites, err := config.Select([]string{"all"})
		require.NoError(t, err)
		assert.Len(t, suites, 5)
	})

	t.Run("by name", func(t *testing.T) {
		suites, err := config.Select([]string{"jobs"})
		require.NoError(t, err)
		require.Len(t, suites, 1)
		assert.Equal(t, "jobs", suites[0].Name)
	})

	t.Run("by position", func(t *testing.T) {
		suites, err := config.Select([]string{"4"})
		require.NoError(t, err)
		require.Len(t, suites, 1)
		assert.Equal(t, "vendor", suites[0].Name)
	})

	t.Run("order follows configuration not the request", func(t *testing.T) {
		suites, err := config.Select([]string{"award", "login"})
		require.NoError(t, err)
		require.Len(t, suites, 2)
		assert.Equal(t, "login", suites[0].Name)
		assert.Equal(t, "award", suites[1].Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := config.Select([]string{"payments"})
		assert.Error(t, err)
	})

	t.Run("position out of range", func(t *testing.T) {
		_, err := config.Select([]string{"9"})
		assert.Error(t, err)
	})
}

func TestBackoffDelayIsLinear(t *testing.T) {
	base := 10 * time.Second

	assert.Equal(t, time.Duration(0), backoffDelay(1, base))
	assert.Equal(t, 10*time.Second, backoffDelay(2, base))
	assert.Equal(t, 20*time.Second, backoffDelay(3, base))
}

func TestNewCreatesResultsDir(t *testing.T) {
	config := DefaultConfig()
	config.Output.ResultsBaseDir = filepath.Join(t.TempDir(), "results")

	r, err := New(Dependencies{Config: config, WorkDir: ".", DataDir: t.TempDir()})
	require.NoError(t, err)

	info, err := os.Stat(r.ResultsDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewResolvesRelativePaths(t *testing.T) {
	// The suites run in the e2e package dir, not the runner's working
	// directory, so relative paths must be made absolute before being
	// handed to the child process environment.
	config := DefaultConfig()
	config.Output.ResultsBaseDir = filepath.Join(t.TempDir(), "results")

	r, err := New(Dependencies{Config: config, WorkDir: ".", DataDir: "data"})
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(r.deps.DataDir), "data dir %q is not absolute", r.deps.DataDir)
	assert.True(t, filepath.IsAbs(r.ResultsDir()), "results dir %q is not absolute", r.ResultsDir())

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "data"), r.deps.DataDir)
}
