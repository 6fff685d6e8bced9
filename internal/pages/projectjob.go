package pages

import (
	"fmt"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/Harshalogy/tailorbird/internal/ident"
	"github.com/Harshalogy/tailorbird/internal/steplog"
	"github.com/Harshalogy/tailorbird/internal/workflow"
)

// ProjectJobPage drives a project's Jobs tab: job creation and
// configuration, bid rows, and vendor invitations.
type ProjectJobPage struct {
	page playwright.Page

	jobsTab           playwright.Locator
	jobsPanel         playwright.Locator
	viewDetailsButton playwright.Locator
	deleteButton      playwright.Locator

	titleCell playwright.Locator
	titleEdit playwright.Locator

	jobSummaryTab    playwright.Locator
	descriptionInput playwright.Locator
	startDateButton  playwright.Locator
	endDateButton    playwright.Locator

	bidsTab        playwright.Locator
	bidsPanel      playwright.Locator
	bidSearchInput playwright.Locator

	inviteVendorsButton playwright.Locator
	manageVendorsEntry  playwright.Locator
}

// NewProjectJobPage creates the job page object.
func NewProjectJobPage(page playwright.Page) *ProjectJobPage {
	return &ProjectJobPage{
		page: page,

		jobsTab: page.GetByText("Jobs", playwright.PageGetByTextOptions{
			Exact: playwright.Bool(true),
		}),
		jobsPanel: page.GetByRole(*playwright.AriaRoleTabpanel, playwright.PageGetByRoleOptions{
			Name: "Jobs",
		}),
		viewDetailsButton: page.Locator(`button[title="View Details"]`).First(),
		deleteButton:      page.Locator(`button[aria-label="Delete Row"]`).First(),

		// The placeholder title renders as an em dash until edited.
		titleCell: page.Locator(`div[role="gridcell"][col-id="title"]:has-text('—')`).First(),
		titleEdit: page.Locator(`div[role="gridcell"][col-id="title"] input`).First(),

		jobSummaryTab:    page.Locator(`.mantine-Tabs-tabLabel:has-text("Job Summary")`),
		descriptionInput: page.Locator(`input[placeholder="Enter job description"]`),
		startDateButton: page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
			Name: "Select start date",
		}),
		endDateButton: page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
			Name: "Select end date",
		}),

		bidsTab: page.Locator(`.mantine-Tabs-tabLabel:has-text("Bids")`),
		bidsPanel: page.GetByRole(*playwright.AriaRoleTabpanel, playwright.PageGetByRoleOptions{
			Name: "Bids",
		}),
		bidSearchInput: page.GetByTestId("bird-table-select-search"),

		inviteVendorsButton: page.Locator(`button:has-text('Invite Vendors To Bid')`),
		manageVendorsEntry:  page.Locator(`p:has-text("Manage Vendors")`),
	}
}

// NavigateToJobsTab opens the Jobs tab and waits for the URL to reflect it.
func (p *ProjectJobPage) NavigateToJobsTab() error {
	steplog.Step("Navigating to Jobs tab...")

	if err := p.jobsTab.Click(); err != nil {
		return fmt.Errorf("failed to click Jobs tab: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("jobs tab did not settle: %w", err)
	}
	if err := p.page.WaitForURL(regexp.MustCompile(`tab=jobs`), playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(mediumWait),
	}); err != nil {
		return fmt.Errorf("URL never reflected the jobs tab: %w", err)
	}

	steplog.Success("Navigated to Jobs screen.")
	return nil
}

// AddJob opens the add-row menu and selects "Add Job". The new row is
// only well formed once it exposes both a details control and a delete
// control; a placeholder row has neither.
func (p *ProjectJobPage) AddJob() error {
	steplog.Step("Opening Add Job dropdown...")

	addMenu := p.jobsPanel.GetByTestId("bt-add-row-menu")
	if err := waitVisible(addMenu, mediumWait); err != nil {
		return fmt.Errorf("add-row menu is not visible: %w", err)
	}
	if err := addMenu.Click(); err != nil {
		return fmt.Errorf("failed to open add-row menu: %w", err)
	}
	if err := waitVisible(p.page.Locator(`div[role="menu"], .mantine-Menu-dropdown`), shortWait); err != nil {
		return fmt.Errorf("add-row menu did not open: %w", err)
	}

	addJob := p.page.GetByRole(*playwright.AriaRoleMenuitem, playwright.PageGetByRoleOptions{
		Name: "Add Job",
	})
	if err := addJob.Click(); err != nil {
		return fmt.Errorf("failed to select Add Job: %w", err)
	}

	if err := waitVisible(p.page.Locator(`div[role="gridcell"][col-id="title"]`), 15000); err != nil {
		return fmt.Errorf("job row never appeared: %w", err)
	}
	if err := waitVisible(p.viewDetailsButton, mediumWait); err != nil {
		return fmt.Errorf("job row has no details control: %w", err)
	}
	if err := waitVisible(p.deleteButton, mediumWait); err != nil {
		return fmt.Errorf("job row has no delete control: %w", err)
	}

	steplog.Success("New job row added.")
	return nil
}

// EditJobTitle double-clicks the placeholder title cell, replaces its
// content, and commits with Enter. Blur-to-save is not trusted; the
// explicit commit key is required for the value to persist.
func (p *ProjectJobPage) EditJobTitle(title string) error {
	steplog.Info("Editing job title...")

	if err := waitVisible(p.titleCell, mediumWait); err != nil {
		return fmt.Errorf("title cell is not visible: %w", err)
	}
	if err := p.titleCell.Dblclick(); err != nil {
		return fmt.Errorf("failed to open the inline title editor: %w", err)
	}
	if err := waitVisible(p.titleEdit, shortWait); err != nil {
		return fmt.Errorf("inline title editor did not appear: %w", err)
	}
	if err := p.titleEdit.Fill(title); err != nil {
		return fmt.Errorf("failed to fill job title: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("page did not settle before committing title: %w", err)
	}
	if err := p.page.Keyboard().Press("Enter"); err != nil {
		return fmt.Errorf("failed to commit job title: %w", err)
	}

	steplog.Success("Job title updated to: %s", title)
	return nil
}

// SelectJobType opens the inline type selector on the placeholder cell
// and picks the option matching the visible text.
func (p *ProjectJobPage) SelectJobType(typeText string) error {
	steplog.Info("Selecting Job Type: %s", typeText)

	typeCell := p.page.Locator(`div[col-id="job_type"] span:has-text("Unit Interior")`)
	if err := waitVisible(typeCell, mediumWait); err != nil {
		return fmt.Errorf("job type cell is not visible: %w", err)
	}
	if err := typeCell.Dblclick(); err != nil {
		return fmt.Errorf("failed to open the type selector: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("type selector did not settle: %w", err)
	}

	option := p.page.Locator(fmt.Sprintf(`[data-testid="bird-table-select-dropdown"] p:has-text(%q)`, typeText))
	if err := option.Click(); err != nil {
		return fmt.Errorf("failed to pick job type %q: %w", typeText, err)
	}
	return nil
}

// CreateJob drives the modal-form job creation flow: verifies every
// field in the dialog, fills title and type, confirms the selected type
// reads back exactly, and submits.
func (p *ProjectJobPage) CreateJob(title, jobType string) error {
	steplog.Step("Creating job %q via the Create Job modal...", title)

	createButton := p.page.Locator("button", playwright.PageLocatorOptions{HasText: "Create Job"})
	if err := createButton.Click(); err != nil {
		return fmt.Errorf("failed to click Create Job: %w", err)
	}

	modal := p.page.Locator(`[data-modal-content="true"]`)
	if err := waitVisible(modal, shortWait); err != nil {
		return fmt.Errorf("Create Job modal did not open: %w", err)
	}

	titleInput := p.page.GetByPlaceholder("Enter title")
	typeInput := p.page.GetByPlaceholder("Select job type")
	descriptionInput := p.page.GetByPlaceholder("Enter description")
	cancelButton := p.page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: "Cancel",
	})
	submitButton := p.page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: regexp.MustCompile(`(?i)add job`),
	})

	if err := requireAllVisible(map[string]playwright.Locator{
		"title input":       titleInput,
		"job type input":    typeInput,
		"description input": descriptionInput,
		"cancel button":     cancelButton,
		"submit button":     submitButton,
	}, shortWait); err != nil {
		return err
	}

	if err := titleInput.Fill(title); err != nil {
		return fmt.Errorf("failed to fill job title: %w", err)
	}
	if err := typeInput.Click(); err != nil {
		return fmt.Errorf("failed to open job type selector: %w", err)
	}
	option := p.page.GetByRole(*playwright.AriaRoleOption, playwright.PageGetByRoleOptions{
		Name: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(jobType)),
	})
	if err := option.Click(); err != nil {
		return fmt.Errorf("failed to pick job type %q: %w", jobType, err)
	}

	selected, err := typeInput.InputValue()
	if err != nil {
		return fmt.Errorf("failed to read back job type: %w", err)
	}
	if selected != jobType {
		return fmt.Errorf("job type reads %q after selection, want %q", selected, jobType)
	}

	if err := submitButton.Click(); err != nil {
		return fmt.Errorf("failed to submit Create Job modal: %w", err)
	}

	steplog.Success("Job %q created with type %s.", title, jobType)
	return nil
}

// OpenJobSummary opens the job's details view and switches to the Job
// Summary tab.
func (p *ProjectJobPage) OpenJobSummary() error {
	steplog.Step("Opening Job Summary...")

	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("jobs grid did not settle: %w", err)
	}
	if err := waitVisible(p.viewDetailsButton, mediumWait); err != nil {
		return fmt.Errorf("details control is not visible: %w", err)
	}
	if err := p.viewDetailsButton.Click(); err != nil {
		return fmt.Errorf("failed to open job details: %w", err)
	}
	if err := p.jobSummaryTab.Click(); err != nil {
		return fmt.Errorf("failed to open Job Summary tab: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("summary view did not settle: %w", err)
	}
	return nil
}

// FillJobDescription fills the summary tab's free-text description.
func (p *ProjectJobPage) FillJobDescription(description string) error {
	steplog.Info("Filling Job Summary description...")

	if err := waitVisible(p.descriptionInput, mediumWait); err != nil {
		return fmt.Errorf("description input is not visible: %w", err)
	}
	if err := p.descriptionInput.Fill(description); err != nil {
		return fmt.Errorf("failed to fill job description: %w", err)
	}
	return nil
}

// SelectStartEndDates picks today as the start date and tomorrow as the
// end date from the two independent date pickers, addressed by their
// rendered day-month-year labels. Completion is confirmed by the URL
// reflecting the summary tab.
func (p *ProjectJobPage) SelectStartEndDates(now time.Time) (start, end time.Time, err error) {
	start = now
	end = now.AddDate(0, 0, 1)
	startLabel := ident.CalendarLabel(start)
	endLabel := ident.CalendarLabel(end)

	steplog.Info("Selecting Start Date: %s", startLabel)
	if err := p.startDateButton.Click(); err != nil {
		return start, end, fmt.Errorf("failed to open start date picker: %w", err)
	}
	startDay := p.page.Locator(fmt.Sprintf(`button[aria-label=%q]`, startLabel))
	if err := waitVisible(startDay, shortWait); err != nil {
		return start, end, fmt.Errorf("start date %q not offered by the picker: %w", startLabel, err)
	}
	if err := startDay.Click(); err != nil {
		return start, end, fmt.Errorf("failed to pick start date: %w", err)
	}

	steplog.Info("Selecting End Date: %s", endLabel)
	if err := p.endDateButton.Click(); err != nil {
		return start, end, fmt.Errorf("failed to open end date picker: %w", err)
	}
	endDay := p.page.Locator(fmt.Sprintf(`button[aria-label=%q]`, endLabel))
	if err := waitVisible(endDay, shortWait); err != nil {
		return start, end, fmt.Errorf("end date %q not offered by the picker: %w", endLabel, err)
	}
	if err := endDay.Click(); err != nil {
		return start, end, fmt.Errorf("failed to pick end date: %w", err)
	}

	if err := p.page.WaitForURL(regexp.MustCompile(`tab=summary`), playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(mediumWait),
	}); err != nil {
		return start, end, fmt.Errorf("URL never confirmed the summary tab: %w", err)
	}

	steplog.Success("Job Summary dates confirmed.")
	return start, end, nil
}

// CreateBidWithMaterial adds a bid row scoped "with material" in the
// first scope cell.
func (p *ProjectJobPage) CreateBidWithMaterial() error {
	return p.createBid(workflow.ScopeWithMaterial, true)
}

// CreateBidWithoutMaterial adds a bid row scoped "without material" in
// the last scope cell.
func (p *ProjectJobPage) CreateBidWithoutMaterial() error {
	return p.createBid(workflow.ScopeWithoutMaterial, false)
}

// createBid adds a grid row and types the scope label into its scope
// cell. The two public variants differ only in which cell they target
// and the literal label typed.
func (p *ProjectJobPage) createBid(scope workflow.BidScope, firstCell bool) error {
	steplog.Step("Creating %s...", scope)

	if err := p.bidsTab.Click(); err != nil {
		return fmt.Errorf("failed to open Bids tab: %w", err)
	}
	if err := p.bidsPanel.GetByTestId("bt-add-row-menu").Click(); err != nil {
		return fmt.Errorf("failed to open bid add-row menu: %w", err)
	}
	if err := p.page.GetByTestId("bt-add-row").Click(); err != nil {
		return fmt.Errorf("failed to add bid row: %w", err)
	}

	scopeCells := p.page.Locator(`div[role="gridcell"][col-id="scope"]`)
	scopeCell := scopeCells.Last()
	if firstCell {
		scopeCell = scopeCells.First()
	}
	if err := waitVisible(scopeCell, mediumWait); err != nil {
		return fmt.Errorf("bid scope cell never appeared: %w", err)
	}
	if err := scopeCell.Dblclick(); err != nil {
		return fmt.Errorf("failed to open the scope editor: %w", err)
	}

	if err := p.bidSearchInput.Fill(string(scope)); err != nil {
		return fmt.Errorf("failed to type bid scope: %w", err)
	}
	if err := p.bidSearchInput.Press("Enter"); err != nil {
		return fmt.Errorf("failed to commit bid scope: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("bid row did not settle: %w", err)
	}

	steplog.Success("Created %s.", scope)
	return nil
}

// InviteVendorsToBid opens the vendor invitation drawer. The UI exposes
// the action under two entry points depending on prior state; when the
// direct button is hidden the Manage Vendors panel is opened first.
func (p *ProjectJobPage) InviteVendorsToBid() error {
	steplog.Step("Inviting Vendors to Bid...")

	visible, err := p.inviteVendorsButton.IsVisible()
	if err != nil {
		return fmt.Errorf("failed to check invite button visibility: %w", err)
	}
	if !visible {
		steplog.Warn("Invite button hidden, opening Manage Vendors first")
		if err := p.manageVendorsEntry.Click(); err != nil {
			return fmt.Errorf("failed to open Manage Vendors: %w", err)
		}
	}

	if err := p.inviteVendorsButton.Click(); err != nil {
		return fmt.Errorf("failed to click Invite Vendors To Bid: %w", err)
	}
	if err := waitVisible(p.vendorDrawerSearch(), mediumWait); err != nil {
		return fmt.Errorf("vendor drawer did not open: %w", err)
	}
	return nil
}

// InviteExistingVendor searches the drawer for an existing vendor,
// selects it, and sends the invitation. The invite is confirmed by the
// vendor's name appearing in the grid's vendor_name column.
func (p *ProjectJobPage) InviteExistingVendor(name string) error {
	steplog.Step("Inviting existing vendor %q...", name)

	search := p.vendorDrawerSearch()
	if err := waitVisible(search, mediumWait); err != nil {
		return fmt.Errorf("vendor search is not visible: %w", err)
	}
	if err := search.Fill(name); err != nil {
		return fmt.Errorf("failed to search for vendor: %w", err)
	}

	checkbox := p.page.Locator(fmt.Sprintf(
		`.ag-pinned-left-cols-container div[role="row"]:has-text('%s') .ag-checkbox`, name))
	if err := waitVisible(checkbox, mediumWait); err != nil {
		return fmt.Errorf("vendor %q not found in the drawer: %w", name, err)
	}
	if err := checkbox.Click(); err != nil {
		return fmt.Errorf("failed to select vendor %q: %w", name, err)
	}

	if err := p.page.Locator(`button:has-text('Invite Selected Vendors to Bid')`).Click(); err != nil {
		return fmt.Errorf("failed to send the invitation: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("invitation did not settle: %w", err)
	}

	if err := p.VerifyVendorInvited(name); err != nil {
		return err
	}

	steplog.Success("Vendor %q invited.", name)
	return nil
}

// InviteNewVendor registers and invites a vendor that does not yet
// exist in the system.
func (p *ProjectJobPage) InviteNewVendor(reg workflow.VendorRegistration) error {
	steplog.Step("Inviting new vendor %q...", reg.Organization)

	if err := p.inviteVendorsButton.Click(); err != nil {
		return fmt.Errorf("failed to click Invite Vendors To Bid: %w", err)
	}
	if err := p.page.Locator(`button:has-text('Invite a New Vendor to Bid')`).Click(); err != nil {
		return fmt.Errorf("failed to open the new vendor form: %w", err)
	}

	fields := []struct {
		placeholder string
		value       string
	}{
		{"Enter Vendor Organization Name", reg.Organization},
		{"Enter Contact Name", reg.ContactName},
		{"Enter Contact Email", reg.ContactEmail},
		{"Search for address...", reg.Address},
	}
	for _, f := range fields {
		input := p.page.Locator(fmt.Sprintf(`input[placeholder=%q]`, f.placeholder))
		if err := input.Fill(f.value); err != nil {
			return fmt.Errorf("failed to fill %q: %w", f.placeholder, err)
		}
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("address lookup did not settle: %w", err)
	}

	submit := p.page.Locator(`.mantine-Stack-root:has-text('Invite a New Vendor to Bid') button:has-text('Invite Vendor')`)
	if err := submit.Click(); err != nil {
		return fmt.Errorf("failed to submit the new vendor form: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("vendor registration did not settle: %w", err)
	}

	if err := p.VerifyVendorInvited(reg.Organization); err != nil {
		return err
	}

	steplog.Success("New vendor %q invited.", reg.Organization)
	return nil
}

// VerifyVendorInvited asserts a grid cell in the vendor_name column
// contains the vendor.
func (p *ProjectJobPage) VerifyVendorInvited(name string) error {
	cell := p.page.Locator(fmt.Sprintf(`div[col-id="vendor_name"]:has-text('%s')`, name))
	if err := waitVisible(cell, mediumWait); err != nil {
		return fmt.Errorf("vendor %q never appeared in the vendor_name column: %w", name, err)
	}
	return nil
}

func (p *ProjectJobPage) vendorDrawerSearch() playwright.Locator {
	return p.page.Locator(`.mantine-Drawer-body input[placeholder="Search..."]`)
}
