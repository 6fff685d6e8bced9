// Package runner sequences the five acceptance suites. Each suite is an
// independently launched `go test` invocation; the suite order matters
// because later suites consume session and scratch artifacts written by
// earlier ones.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Harshalogy/tailorbird/internal/steplog"
)

// Dependencies holds everything the runner needs to execute suites.
type Dependencies struct {
	Config *Config
	// WorkDir is the module root the go tool runs from.
	WorkDir string
	// DataDir receives session and scratch files shared across suites.
	DataDir string
}

// Runner executes suites in order, retrying each a bounded number of
// times with linear backoff. Retrying lives here, at the outermost
// scenario level, and nowhere inside individual steps.
type Runner struct {
	deps       Dependencies
	runID      string
	resultsDir string
}

// New prepares a runner and its per-run results directory. Both the
// data and results directories are resolved to absolute paths: the
// suites run as `go test` children whose working directory is the test
// package source dir, so a relative path would name a different
// location for the child than for the runner and `clean`.
func New(deps Dependencies) (*Runner, error) {
	dataDir, err := filepath.Abs(deps.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	deps.DataDir = dataDir

	runID := uuid.NewString()[:8]
	resultsDir, err := filepath.Abs(filepath.Join(deps.Config.Output.ResultsBaseDir,
		fmt.Sprintf("run-%s-%s", time.Now().Format("20060102-150405"), runID)))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve results directory: %w", err)
	}
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}

	return &Runner{
		deps:       deps,
		runID:      runID,
		resultsDir: resultsDir,
	}, nil
}

// ResultsDir returns the per-run artifact directory.
func (r *Runner) ResultsDir() string {
	return r.resultsDir
}

// Run executes the requested suites in their configured order. A suite
// that fails after its last attempt aborts the remaining suites, since
// each depends on artifacts produced by its predecessors.
func (r *Runner) Run(ctx context.Context, requests []string) error {
	suites, err := r.deps.Config.Select(requests)
	if err != nil {
		return err
	}

	for _, suite := range suites {
		if err := r.runWithRetry(ctx, suite); err != nil {
			return fmt.Errorf("suite %s failed, aborting dependent suites: %w", suite.Name, err)
		}
	}

	steplog.Success("All %d suites passed. Artifacts in %s", len(suites), r.resultsDir)
	return nil
}

func (r *Runner) runWithRetry(ctx context.Context, suite SuiteConfig) error {
	backoff := time.Duration(r.deps.Config.Retry.BackoffSeconds) * time.Second

	var err error
	for attempt := 1; attempt <= r.deps.Config.Retry.Attempts; attempt++ {
		if attempt > 1 {
			delay := backoffDelay(attempt, backoff)
			steplog.Warn("Suite %s attempt %d/%d after %s backoff",
				suite.Name, attempt, r.deps.Config.Retry.Attempts, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err = r.runSuite(ctx, suite, attempt); err == nil {
			return nil
		}
		steplog.Failure(err, "Suite %s attempt %d failed", suite.Name, attempt)
	}
	return err
}

// backoffDelay returns the wait before the given attempt: linear in the
// number of failures so far.
func backoffDelay(attempt int, base time.Duration) time.Duration {
	return time.Duration(attempt-1) * base
}

func (r *Runner) runSuite(ctx context.Context, suite SuiteConfig, attempt int) error {
	steplog.Step("Running suite %s (%s)...", suite.Name, suite.Description)

	logPath := filepath.Join(r.resultsDir, fmt.Sprintf("%s-attempt%d.log", suite.Name, attempt))
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create suite log: %w", err)
	}
	defer logFile.Close()

	cmd := exec.CommandContext(ctx, "go", "test", "-count=1", "-v", "-run", suite.Run, "./e2e")
	cmd.Dir = r.deps.WorkDir
	cmd.Stdout = io.MultiWriter(logFile, os.Stdout)
	cmd.Stderr = io.MultiWriter(logFile, os.Stderr)
	cmd.Env = append(os.Environ(),
		"DATA_DIR="+r.deps.DataDir,
		"RESULTS_DIR="+r.resultsDir,
	)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("suite %s failed (log: %s): %w", suite.Name, logPath, err)
	}

	steplog.Success("Suite %s passed.", suite.Name)
	return nil
}
