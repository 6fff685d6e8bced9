package pages

import (
	"fmt"
	"regexp"

	"github.com/playwright-community/playwright-go"

	"github.com/Harshalogy/tailorbird/internal/steplog"
)

// LoginPage drives the credential form. The caller is responsible for
// asserting the post-redirect URL; a failed redirect is fatal for every
// suite that depends on stored session state.
type LoginPage struct {
	page          playwright.Page
	emailInput    playwright.Locator
	passwordInput playwright.Locator
	signInButton  playwright.Locator
}

// NewLoginPage creates the login page object.
func NewLoginPage(page playwright.Page) *LoginPage {
	return &LoginPage{
		page:          page,
		emailInput:    page.Locator(`input[type="email"]`),
		passwordInput: page.Locator(`input[type="password"]`),
		signInButton: page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
			Name: regexp.MustCompile(`(?i)(log ?in|sign ?in)`),
		}),
	}
}

// Login fills the credential fields and submits. The browser is left
// authenticated as a side effect.
func (p *LoginPage) Login(email, password string) error {
	steplog.Step("Logging in as %s...", email)

	if err := waitVisible(p.emailInput, mediumWait); err != nil {
		return fmt.Errorf("login form did not appear: %w", err)
	}
	if err := p.emailInput.Fill(email); err != nil {
		return fmt.Errorf("failed to fill email: %w", err)
	}
	if err := p.passwordInput.Fill(password); err != nil {
		return fmt.Errorf("failed to fill password: %w", err)
	}
	if err := p.signInButton.Click(); err != nil {
		return fmt.Errorf("failed to submit login form: %w", err)
	}

	steplog.Success("Submitted login form.")
	return nil
}
