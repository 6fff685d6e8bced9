// Package pages wraps the application's screens as page objects:
// semantic actions ("add a job", "award a bid") translated into
// locator interactions. Methods return errors rather than asserting;
// the owning suite decides what is fatal. Every wait is an explicit
// condition with a bounded timeout, never a fixed sleep.
package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Default wait bounds, in milliseconds.
const (
	shortWait  = 5000
	mediumWait = 10000
	longWait   = 30000
)

// searchInput is the page-ready signal: a stable, always-present search
// control that appears once a listing screen has finished loading.
const searchInput = `input[placeholder="Search..."]`

func waitVisible(loc playwright.Locator, timeout float64) error {
	return loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeout),
	})
}

func waitHidden(loc playwright.Locator, timeout float64) error {
	return loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(timeout),
	})
}

func waitSettled(page playwright.Page) error {
	return page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}

// requireAllVisible verifies a set of named controls are present; any
// missing control is reported by name.
func requireAllVisible(controls map[string]playwright.Locator, timeout float64) error {
	for name, loc := range controls {
		if err := waitVisible(loc, timeout); err != nil {
			return fmt.Errorf("%s is not visible: %w", name, err)
		}
	}
	return nil
}
