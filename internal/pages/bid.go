package pages

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/Harshalogy/tailorbird/internal/steplog"
)

// BidPage drives the bid lifecycle: price edits (directly or on behalf
// of a vendor), submission, the bid-leveling comparison view, awarding,
// and contract finalization.
type BidPage struct {
	page  playwright.Page
	Guard *DialogGuard

	totalPriceCell playwright.Locator
	currencyInput  playwright.Locator
	submitButton   playwright.Locator

	bidsTab           playwright.Locator
	contractsTab      playwright.Locator
	bidLevelingButton playwright.Locator

	inviteVendorsButton playwright.Locator
	manageVendorsEntry  playwright.Locator

	finalizeButton      playwright.Locator
	modalFinalizeButton playwright.Locator
	bulkUpdateButton    playwright.Locator
}

// NewBidPage creates the bid page object and registers its dialog
// guard. Native confirmations are accepted only when a step arms the
// guard first.
func NewBidPage(page playwright.Page) *BidPage {
	return &BidPage{
		page:  page,
		Guard: NewDialogGuard(page),

		totalPriceCell: page.Locator(`div[row-index="0"] [role="gridcell"][col-id="total_price"]`).Last(),
		currencyInput:  page.Locator(`input[data-testid="bird-table-currency-input"]`).First(),
		submitButton:   page.Locator(`button:has-text("Submit Bid")`),

		bidsTab:           page.Locator(`.mantine-Tabs-tabLabel:has-text("Bids")`),
		contractsTab:      page.Locator(`.mantine-Tabs-tabLabel:has-text("Contracts")`),
		bidLevelingButton: page.Locator(`button.mantine-ActionIcon-root:has(svg.lucide-scale)`),

		inviteVendorsButton: page.Locator(`button:has-text('Invite Vendors To Bid')`),
		manageVendorsEntry:  page.Locator(`p:has-text("Manage Vendors")`),

		finalizeButton:      page.Locator(`button:has-text("Finalize Contract")`),
		modalFinalizeButton: page.Locator(`.mantine-Modal-content button:has-text("Finalize Contract")`),
		bulkUpdateButton:    page.Locator(`button:has-text("Bulk Update Status")`),
	}
}

// rowActionButton returns the nth overflow action menu trigger in the
// vendor grid.
func (p *BidPage) rowActionButton(n int) playwright.Locator {
	return p.page.Locator(`button:has(svg.lucide-ellipsis-vertical)`).Nth(n)
}

// menuItem returns a dropdown menu entry by its visible label.
func (p *BidPage) menuItem(label string) playwright.Locator {
	return p.page.Locator(fmt.Sprintf(`.mantine-Menu-dropdown .mantine-Menu-itemLabel:has-text(%q)`, label))
}

// EditTotalPrice double-clicks the total price cell and fills the
// currency editor.
func (p *BidPage) EditTotalPrice(price string) error {
	steplog.Step("Editing bid total price to %s...", price)

	if err := p.totalPriceCell.Dblclick(); err != nil {
		return fmt.Errorf("failed to open the price editor: %w", err)
	}
	if err := waitVisible(p.currencyInput, mediumWait); err != nil {
		return fmt.Errorf("currency input never appeared: %w", err)
	}
	if err := p.currencyInput.Fill(price); err != nil {
		return fmt.Errorf("failed to fill total price: %w", err)
	}
	return nil
}

// SubmitBid arms the dialog guard in case submission raises a
// confirmation, clicks Submit Bid, and disarms once the page settles —
// the prompt is accepted if one appears, but no prompt is also a valid
// outcome. Force is required because an editor overlay can intercept
// the click.
func (p *BidPage) SubmitBid() error {
	steplog.Step("Submitting bid...")

	p.Guard.ArmAccept()
	if err := p.submitButton.Click(playwright.LocatorClickOptions{
		Force: playwright.Bool(true),
	}); err != nil {
		return fmt.Errorf("failed to click Submit Bid: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("bid submission did not settle: %w", err)
	}
	if p.Guard.Disarm() > 0 {
		steplog.Info("Submission completed without a confirmation prompt.")
	}

	steplog.Success("Bid submitted.")
	return nil
}

// EditOnBehalfOfVendor opens a bid row's overflow menu, chooses the
// edit-on-behalf action, edits the total price, submits, and closes the
// resulting modal.
func (p *BidPage) EditOnBehalfOfVendor(price string) error {
	steplog.Step("Editing bid on behalf of vendor...")

	if err := p.rowActionButton(1).Click(); err != nil {
		return fmt.Errorf("failed to open the bid action menu: %w", err)
	}
	if err := p.menuItem("Edit On Behalf of Vendor").Click(); err != nil {
		return fmt.Errorf("failed to choose Edit On Behalf of Vendor: %w", err)
	}
	if err := waitVisible(p.page.Locator(`h2.mantine-Modal-title`), mediumWait); err != nil {
		return fmt.Errorf("edit modal never opened: %w", err)
	}

	if err := p.EditTotalPrice(price); err != nil {
		return err
	}
	if err := p.SubmitBid(); err != nil {
		return err
	}

	closeButton := p.page.Locator(`header.mantine-Modal-header button.mantine-Modal-close`)
	if err := waitVisible(closeButton, mediumWait); err != nil {
		return fmt.Errorf("modal close control never appeared: %w", err)
	}
	if err := closeButton.Click(); err != nil {
		return fmt.Errorf("failed to close the edit modal: %w", err)
	}

	steplog.Success("Bid edited and submitted on behalf of vendor.")
	return nil
}

// NavigateToBidsAndContracts opens the vendor identity's Bids &
// Contracts area and waits for the listing to become searchable.
func (p *BidPage) NavigateToBidsAndContracts() error {
	steplog.Step("Navigating to Bids & Contracts...")

	link := p.page.Locator(`a:has-text("Bids & Contracts")`)
	if err := waitVisible(link, mediumWait); err != nil {
		return fmt.Errorf("Bids & Contracts link never appeared: %w", err)
	}
	if err := link.Click(); err != nil {
		return fmt.Errorf("failed to open Bids & Contracts: %w", err)
	}
	if err := waitVisible(p.page.Locator(searchInput), longWait); err != nil {
		return fmt.Errorf("Bids & Contracts listing never became ready: %w", err)
	}
	return nil
}

// OpenProjectFromSearch locates an invited project by exact name and
// opens it. The Back button appearing confirms the project view loaded.
func (p *BidPage) OpenProjectFromSearch(name string) error {
	steplog.Step("Opening invited project %q...", name)

	if err := p.page.Locator(searchInput).Fill(name); err != nil {
		return fmt.Errorf("failed to search for project: %w", err)
	}
	entry := p.page.GetByText(name, playwright.PageGetByTextOptions{
		Exact: playwright.Bool(true),
	})
	if err := entry.Click(); err != nil {
		return fmt.Errorf("failed to open project %q: %w", name, err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("project view did not settle: %w", err)
	}

	backButton := p.page.Locator(`button:has-text("Back")`)
	if err := waitVisible(backButton, mediumWait); err != nil {
		return fmt.Errorf("project view never finished loading: %w", err)
	}

	steplog.Success("Project %q opened.", name)
	return nil
}

// AcceptBid accepts a pending invitation if one is offered. The accept
// may raise a confirmation dialog; the guard accepts it when it does.
func (p *BidPage) AcceptBid() error {
	steplog.Step("Accepting bid invitation...")

	acceptButton := p.page.Locator(`button:has-text("Accept Bid")`)
	visible, err := acceptButton.IsVisible()
	if err != nil {
		return fmt.Errorf("failed to check Accept Bid visibility: %w", err)
	}
	if !visible {
		steplog.Info("No pending invitation to accept.")
		return nil
	}

	p.Guard.ArmAccept()
	if err := acceptButton.Click(); err != nil {
		return fmt.Errorf("failed to click Accept Bid: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("bid acceptance did not settle: %w", err)
	}
	if p.Guard.Disarm() > 0 {
		steplog.Info("Acceptance completed without a confirmation prompt.")
	}

	steplog.Success("Bid invitation accepted.")
	return nil
}

// OpenBidLeveling opens the Bids tab and the side-by-side bid leveling
// comparison view, confirmed by the totals row rendering.
func (p *BidPage) OpenBidLeveling() error {
	steplog.Step("Opening bid leveling view...")

	if err := p.bidsTab.Click(); err != nil {
		return fmt.Errorf("failed to open Bids tab: %w", err)
	}
	if err := p.page.WaitForURL(regexp.MustCompile(`/jobs/\d+\?tab=bids&propertyId=\d+`), playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(mediumWait),
	}); err != nil {
		return fmt.Errorf("URL never reflected the bids tab: %w", err)
	}

	if err := p.bidLevelingButton.Click(); err != nil {
		return fmt.Errorf("failed to open bid leveling: %w", err)
	}
	totalRow := p.page.Locator(`div[role="row"]:has-text("Total")`)
	if err := waitVisible(totalRow, mediumWait); err != nil {
		return fmt.Errorf("bid leveling totals never rendered: %w", err)
	}

	steplog.Success("Bid leveling view opened.")
	return nil
}

// AwardBid opens a vendor's action menu, chooses Award Bid, and
// confirms in the dialog. The award is irreversible.
func (p *BidPage) AwardBid() error {
	steplog.Step("Awarding bid...")

	visible, err := p.inviteVendorsButton.IsVisible()
	if err != nil {
		return fmt.Errorf("failed to check invite button visibility: %w", err)
	}
	if !visible {
		if err := p.manageVendorsEntry.Click(); err != nil {
			return fmt.Errorf("failed to open Manage Vendors: %w", err)
		}
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("vendor panel did not settle: %w", err)
	}

	action := p.rowActionButton(0)
	if err := waitVisible(action, mediumWait); err != nil {
		return fmt.Errorf("vendor action menu never appeared: %w", err)
	}
	if err := action.Click(); err != nil {
		return fmt.Errorf("failed to open the vendor action menu: %w", err)
	}
	if err := p.menuItem("Award Bid").Click(); err != nil {
		return fmt.Errorf("failed to choose Award Bid: %w", err)
	}

	dialog := p.page.Locator(`section[role="dialog"]`)
	if err := waitVisible(dialog, shortWait); err != nil {
		return fmt.Errorf("award confirmation dialog never opened: %w", err)
	}
	if err := requireAllVisible(map[string]playwright.Locator{
		"cancel button": dialog.Locator(`button:has-text("Cancel")`),
		"award button":  dialog.Locator(`button:has-text("Award")`),
	}, shortWait); err != nil {
		return err
	}
	if err := dialog.Locator(`button:has-text("Award")`).Click(); err != nil {
		return fmt.Errorf("failed to confirm the award: %w", err)
	}

	steplog.Success("Award confirmed.")
	return nil
}

// VerifyAwarded polls for the awarded row's status cell and asserts its
// text literally equals "Awarded".
func (p *BidPage) VerifyAwarded() error {
	statusCell := p.page.Locator(`div[role="row"]:has-text("Awarded") div[col-id="status"] p`)
	if err := waitVisible(statusCell, mediumWait); err != nil {
		return fmt.Errorf("no row reached Awarded status: %w", err)
	}

	status, err := statusCell.TextContent()
	if err != nil {
		return fmt.Errorf("failed to read the status cell: %w", err)
	}
	if strings.TrimSpace(status) != "Awarded" {
		return fmt.Errorf("status cell reads %q, want %q", strings.TrimSpace(status), "Awarded")
	}

	steplog.Success("Vendor has been awarded.")
	return nil
}

// FinalizeContract switches to the Contracts tab and finalizes: the
// first click opens a confirming modal, the second confirms inside it.
// The contract is immutable once "Bulk Update Status" reports disabled.
func (p *BidPage) FinalizeContract() error {
	steplog.Step("Finalizing contract...")

	if err := p.contractsTab.Click(); err != nil {
		return fmt.Errorf("failed to open Contracts tab: %w", err)
	}
	if err := p.finalizeButton.Click(); err != nil {
		return fmt.Errorf("failed to click Finalize Contract: %w", err)
	}
	if err := p.modalFinalizeButton.Click(); err != nil {
		return fmt.Errorf("failed to confirm inside the finalize modal: %w", err)
	}
	if err := waitHidden(p.modalFinalizeButton, mediumWait); err != nil {
		return fmt.Errorf("finalize confirmation never completed: %w", err)
	}

	disabled, err := p.bulkUpdateButton.IsDisabled()
	if err != nil {
		return fmt.Errorf("failed to check Bulk Update Status: %w", err)
	}
	if !disabled {
		return fmt.Errorf("Bulk Update Status is still enabled after finalization")
	}

	steplog.Success("Contract finalized and locked.")
	return nil
}
