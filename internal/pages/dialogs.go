package pages

import (
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/Harshalogy/tailorbird/internal/steplog"
)

// DialogGuard handles native confirmation dialogs one shot at a time.
// A step that may trigger a confirmation arms the guard immediately
// before the action; if a dialog appears it is accepted and the arm is
// consumed, and if none appears the step disarms afterwards — the
// prompt is optional, not required. Unexpected dialogs are dismissed
// and counted, matching the driver's default behavior when no handler
// is registered.
type DialogGuard struct {
	mu        sync.Mutex
	armed     int
	dismissed int
}

// NewDialogGuard registers the guard on the page. Register once per
// page; repeated handlers would race each other for the same dialog.
func NewDialogGuard(page playwright.Page) *DialogGuard {
	g := &DialogGuard{}
	page.OnDialog(func(dialog playwright.Dialog) {
		steplog.Info("Dialog appeared: %s", dialog.Message())
		if g.consume() {
			if err := dialog.Accept(); err != nil {
				steplog.Failure(err, "failed to accept dialog")
			}
			return
		}
		steplog.Warn("dismissing unexpected dialog")
		g.recordDismissed()
		if err := dialog.Dismiss(); err != nil {
			steplog.Failure(err, "failed to dismiss dialog")
		}
	})
	return g
}

// ArmAccept accepts the next dialog to appear, exactly once.
func (g *DialogGuard) ArmAccept() {
	g.mu.Lock()
	g.armed++
	g.mu.Unlock()
}

// Disarm clears arms that never fired and reports how many were
// cleared. Call after the triggering action has settled: a cleared arm
// means the app completed the action without asking.
func (g *DialogGuard) Disarm() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	cleared := g.armed
	g.armed = 0
	return cleared
}

// Pending reports how many armed accepts have not yet fired.
func (g *DialogGuard) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.armed
}

// Dismissed reports how many dialogs appeared with no arm waiting. A
// suite asserts this is zero after a flow: an unplanned dismissal means
// the app asked a question no step anticipated.
func (g *DialogGuard) Dismissed() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dismissed
}

func (g *DialogGuard) consume() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.armed == 0 {
		return false
	}
	g.armed--
	return true
}

func (g *DialogGuard) recordDismissed() {
	g.mu.Lock()
	g.dismissed++
	g.mu.Unlock()
}
