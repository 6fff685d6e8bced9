package e2e

import (
	"testing"

	"github.com/playwright-community/playwright-go"

	"github.com/Harshalogy/tailorbird/internal/config"
	"github.com/Harshalogy/tailorbird/internal/pages"
	"github.com/Harshalogy/tailorbird/internal/session"
)

// TestLoginAndStoreSession authenticates the primary user and stores
// their session for every later suite.
// Feature: Authentication
//
//	Scenario: Login with valid credentials and store session
//	  Given I am on the login page
//	  When I submit valid credentials
//	  Then I should be redirected to the dashboard
//	  And my session state should be stored for later runs
func TestLoginAndStoreSession(t *testing.T) {
	requireEnv(t)

	// Missing credentials are a fatal setup failure: every downstream
	// suite depends on the session this suite stores.
	creds, err := config.LoadUserCredentials()
	if err != nil {
		t.Fatalf("fatal setup failure: %v", err)
	}

	context, err := browser.NewContext(session.FreshContextOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer context.Close()

	page, err := context.NewPage()
	if err != nil {
		t.Fatal(err)
	}
	defer page.Close()
	defer captureOnFailure(t, page, "login-failure")

	login := pages.NewLoginPage(page)

	// Given I am on the login page
	if !t.Run("navigate to login page", func(t *testing.T) {
		if _, err := page.Goto(app.LoginURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateLoad,
		}); err != nil {
			t.Fatalf("failed to open login page: %v", err)
		}
	}) {
		t.Fatal("aborting: login page never loaded")
	}

	// When I submit valid credentials
	if !t.Run("perform login", func(t *testing.T) {
		if err := login.Login(creds.Email, creds.Password); err != nil {
			t.Fatalf("login failed: %v", err)
		}
	}) {
		t.Fatal("aborting: login submission failed")
	}

	// Then I should be redirected to the dashboard
	if !t.Run("verify redirect to dashboard", func(t *testing.T) {
		if err := page.WaitForURL(app.DashboardURL, playwright.PageWaitForURLOptions{
			Timeout: playwright.Float(30000),
		}); err != nil {
			t.Fatalf("did not reach the dashboard after login: %v", err)
		}
	}) {
		t.Fatal("aborting: dashboard redirect failed, session would be unauthenticated")
	}

	// And my session state should be stored for later runs
	t.Run("store session state", func(t *testing.T) {
		if err := sessions.Save(context, session.RolePrimary); err != nil {
			t.Fatalf("failed to store session state: %v", err)
		}
		t.Logf("session stored at %s", sessions.Path(session.RolePrimary))
	})
}
