package e2e

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"

	"github.com/Harshalogy/tailorbird/internal/config"
	"github.com/Harshalogy/tailorbird/internal/pages"
	"github.com/Harshalogy/tailorbird/internal/scratch"
	"github.com/Harshalogy/tailorbird/internal/session"
)

var (
	pw      *playwright.Playwright
	browser playwright.Browser

	app          *config.AppConfig
	sessions     *session.Store
	scratchStore *scratch.Store
)

// TestMain sets up and tears down the Playwright browser for all suites.
// When the target environment is not configured every suite skips, so
// the test binary stays runnable anywhere.
func TestMain(m *testing.M) {
	// The runner injects environment via the process; a local .env at
	// the module root covers direct `go test ./e2e` invocations.
	_ = godotenv.Load()
	_ = godotenv.Load(filepath.Join("..", ".env"))

	var err error
	app, err = config.LoadAppConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "target environment not configured (%v); suites will skip\n", err)
		m.Run()
		return
	}

	// Paths are relative to the package directory under `go test`.
	if os.Getenv("DATA_DIR") == "" {
		app.DataDir = filepath.Join("..", "data")
	}
	if os.Getenv("RESULTS_DIR") == "" {
		app.ResultsDir = filepath.Join("..", "test-results")
	}
	sessions = session.NewStore(app.DataDir)
	scratchStore = scratch.NewStore(app.DataDir)

	// Start Playwright (browsers already installed via: go run github.com/playwright-community/playwright-go/cmd/playwright@latest install chromium)
	pw, err = playwright.Run()
	if err != nil {
		panic(err)
	}
	defer pw.Stop()

	// Launch browser in headless mode
	browser, err = pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		panic(err)
	}
	defer browser.Close()

	m.Run()
}

// requireEnv skips the calling suite when no target environment is
// configured.
func requireEnv(t *testing.T) {
	t.Helper()
	if app == nil {
		t.Skip("LOGIN_URL/DASHBOARD_URL not set; skipping browser suite")
	}
}

// captureOnFailure saves a full-page screenshot of the failing state
// into the artifact directory. Registered with defer so it observes the
// suite's final verdict.
func captureOnFailure(t *testing.T, page playwright.Page, name string) {
	t.Helper()
	if !t.Failed() {
		return
	}

	if err := os.MkdirAll(app.ResultsDir, 0o755); err != nil {
		t.Logf("could not create artifact directory: %v", err)
		return
	}
	path := filepath.Join(app.ResultsDir, name+".png")
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		t.Logf("could not capture failure screenshot: %v", err)
		return
	}
	t.Logf("failure screenshot saved to %s", path)
}

// requireDialogsHandled fails the suite when a dialog went off script:
// either one appeared that no step had armed for (it was dismissed), or
// a step finished without resolving the arm it set. A flow where no
// confirmation ever appeared passes — the prompts are optional.
func requireDialogsHandled(t *testing.T, guard *pages.DialogGuard) {
	t.Helper()
	if n := guard.Dismissed(); n > 0 {
		t.Errorf("%d unexpected dialog(s) were dismissed during the flow", n)
	}
	if n := guard.Pending(); n > 0 {
		t.Errorf("%d armed confirmation(s) left unresolved after the flow settled", n)
	}
}
