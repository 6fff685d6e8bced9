package pages

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/Harshalogy/tailorbird/internal/ident"
	"github.com/Harshalogy/tailorbird/internal/scratch"
	"github.com/Harshalogy/tailorbird/internal/steplog"
)

// ProjectPage drives the projects listing and the "Add project" modal.
type ProjectPage struct {
	page    playwright.Page
	scratch *scratch.Store

	projectsTab playwright.Locator
	modal       playwright.Locator
	modalTitle  playwright.Locator

	nameInput        playwright.Locator
	propertyDropdown playwright.Locator
	descInput        playwright.Locator
	startDateInput   playwright.Locator
	endDateInput     playwright.Locator

	cancelButton     playwright.Locator
	addProjectButton playwright.Locator
}

// NewProjectPage creates the project page object. The scratch store
// receives the created project's identifiers for the suites that run
// after this one.
func NewProjectPage(page playwright.Page, store *scratch.Store) *ProjectPage {
	return &ProjectPage{
		page:    page,
		scratch: store,

		projectsTab: page.Locator("span.mantine-NavLink-label", playwright.PageLocatorOptions{
			HasText: "Projects & Jobs",
		}),
		modal: page.Locator(`section[role="dialog"][data-modal-content="true"]`),
		modalTitle: page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{
			Name: regexp.MustCompile(`(?i)add project`),
		}),

		nameInput: page.GetByLabel("Name"),
		propertyDropdown: page.GetByRole(*playwright.AriaRoleTextbox, playwright.PageGetByRoleOptions{
			Name: "Property",
		}),
		descInput:      page.GetByLabel("Description"),
		startDateInput: page.GetByLabel("Start Date"),
		endDateInput:   page.GetByLabel("End Date"),

		cancelButton: page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
			Name: "Cancel",
		}),
		addProjectButton: page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
			Name: regexp.MustCompile(`(?i)add project`),
		}),
	}
}

// NavigateToProjects selects the "Projects & Jobs" navigation entry and
// blocks until the network settles.
func (p *ProjectPage) NavigateToProjects() error {
	steplog.Step(`Navigating to "Projects & Jobs"...`)

	if err := waitVisible(p.projectsTab, mediumWait); err != nil {
		return fmt.Errorf("projects navigation entry never became interactable: %w", err)
	}
	if err := p.projectsTab.Click(); err != nil {
		return fmt.Errorf("failed to click projects tab: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("projects page did not settle: %w", err)
	}

	steplog.Success(`Navigated to "Projects & Jobs" section.`)
	return nil
}

// OpenCreateProjectModal waits for the listing's search control — the
// page-ready signal — then opens the "Add project" modal and waits for
// its heading.
func (p *ProjectPage) OpenCreateProjectModal() error {
	steplog.Step("Opening Create Project modal...")

	if err := waitSettled(p.page); err != nil {
		return fmt.Errorf("projects page did not settle: %w", err)
	}

	started := time.Now()
	if err := waitVisible(p.page.Locator(searchInput), longWait); err != nil {
		return fmt.Errorf("projects page never became ready: %w", err)
	}
	steplog.Info("Project page fully loaded in %.2f seconds", time.Since(started).Seconds())

	createButton := p.page.Locator(`button:has-text('Create Project')`)
	if err := waitVisible(createButton, shortWait); err != nil {
		return fmt.Errorf("Create Project button is not visible: %w", err)
	}
	if err := createButton.Click(); err != nil {
		return fmt.Errorf("failed to click Create Project: %w", err)
	}

	if err := waitVisible(p.modal, shortWait); err != nil {
		return fmt.Errorf("Add project modal did not open: %w", err)
	}
	if err := waitVisible(p.modalTitle, shortWait); err != nil {
		return fmt.Errorf("Add project modal heading is missing: %w", err)
	}

	steplog.Success(`"Add project" modal opened.`)
	return nil
}

// VerifyModalFields asserts each required input and button is present
// in the creation form. A missing field is a hard failure.
func (p *ProjectPage) VerifyModalFields() error {
	steplog.Step("Verifying fields inside Add Project modal...")

	if err := requireAllVisible(map[string]playwright.Locator{
		"name input":         p.nameInput,
		"property dropdown":  p.propertyDropdown,
		"description input":  p.descInput,
		"start date input":   p.startDateInput,
		"end date input":     p.endDateInput,
		"cancel button":      p.cancelButton,
		"add project button": p.addProjectButton,
	}, shortWait); err != nil {
		return err
	}

	steplog.Success("All modal fields and buttons are visible.")
	return nil
}

// ProjectDetails parameterizes FillProjectDetails. The name is always
// generated; Description is the base text a random suffix is added to.
type ProjectDetails struct {
	NamePrefix  string
	Description string
	StartDate   string
	EndDate     string
}

// FillProjectDetails fills the creation form with generated identifying
// data, submits, verifies the project appears in the listing, and
// persists the identifiers to the scratch store for dependent suites.
func (p *ProjectPage) FillProjectDetails(details ProjectDetails) (*scratch.ProjectRecord, error) {
	steplog.Step("Filling project details inside modal...")

	prefix := details.NamePrefix
	if prefix == "" {
		prefix = "Automa_Test"
	}
	base := details.Description
	if base == "" {
		base = "Auto_Description"
	}
	projectName := ident.RandomProjectName(prefix)
	description := ident.WithRandomSuffix(base)

	if err := p.nameInput.Fill(projectName); err != nil {
		return nil, fmt.Errorf("failed to fill project name: %w", err)
	}
	steplog.Info("Entered project name: %s", projectName)

	// Policy: always pick the first available property option.
	if err := waitVisible(p.propertyDropdown, shortWait); err != nil {
		return nil, fmt.Errorf("property dropdown is not visible: %w", err)
	}
	if err := p.propertyDropdown.Click(); err != nil {
		return nil, fmt.Errorf("failed to open property dropdown: %w", err)
	}
	firstOption := p.page.Locator(`div[data-combobox-option="true"]`).First()
	if err := waitVisible(firstOption, shortWait); err != nil {
		return nil, fmt.Errorf("no property options appeared: %w", err)
	}
	if err := firstOption.Click(); err != nil {
		return nil, fmt.Errorf("failed to select property option: %w", err)
	}
	steplog.Info("Selected the first property from dropdown.")

	if err := p.descInput.Fill(description); err != nil {
		return nil, fmt.Errorf("failed to fill description: %w", err)
	}
	steplog.Info("Entered description: %s", description)

	typeDelay := playwright.LocatorPressSequentiallyOptions{Delay: playwright.Float(30)}
	if err := p.startDateInput.PressSequentially(details.StartDate, typeDelay); err != nil {
		return nil, fmt.Errorf("failed to type start date: %w", err)
	}
	if err := p.endDateInput.PressSequentially(details.EndDate, typeDelay); err != nil {
		return nil, fmt.Errorf("failed to type end date: %w", err)
	}
	steplog.Info("Entered dates: %s → %s", details.StartDate, details.EndDate)

	if err := waitVisible(p.addProjectButton, shortWait); err != nil {
		return nil, fmt.Errorf("add project button is not visible: %w", err)
	}
	if err := p.addProjectButton.Click(); err != nil {
		return nil, fmt.Errorf("failed to submit project form: %w", err)
	}

	if err := p.page.WaitForURL(regexp.MustCompile(`projects`), playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(mediumWait),
	}); err != nil {
		return nil, fmt.Errorf("did not land on the projects listing: %w", err)
	}
	if err := waitSettled(p.page); err != nil {
		return nil, fmt.Errorf("projects listing did not settle: %w", err)
	}
	steplog.Success("Landed on projects listing.")

	if err := p.AssertProjectCreated(projectName, description); err != nil {
		return nil, err
	}

	record, err := p.scratch.SaveProject(projectName, description)
	if err != nil {
		return nil, fmt.Errorf("failed to persist project handoff: %w", err)
	}
	steplog.Success("Project data saved to: %s", p.scratch.ProjectDataPath())

	return record, nil
}

// AssertProjectCreated locates the last matching text node for the name
// and description regions and asserts exact, whitespace-trimmed
// equality — substring matches are not enough.
func (p *ProjectPage) AssertProjectCreated(name, description string) error {
	regions := []struct {
		label    string
		region   playwright.Locator
		expected string
	}{
		{"name", p.page.Locator(`.mantine-Grid-inner:has-text('Project Name')`), name},
		{"description", p.page.Locator(`.mantine-Grid-inner:has-text('Description')`), description},
	}

	for _, r := range regions {
		steplog.Step("Verifying project %s %q is visible on the dashboard...", r.label, r.expected)

		element := r.region.Locator(fmt.Sprintf(`p:has-text(%q)`, r.expected)).Last()
		if err := waitVisible(element, mediumWait); err != nil {
			return fmt.Errorf("project %s %q did not appear in the listing: %w", r.label, r.expected, err)
		}

		actual, err := element.TextContent()
		if err != nil {
			return fmt.Errorf("failed to read project %s text: %w", r.label, err)
		}
		if strings.TrimSpace(actual) != r.expected {
			return fmt.Errorf("project %s mismatch: got %q, want %q", r.label, strings.TrimSpace(actual), r.expected)
		}

		steplog.Success("Project %s %q is correctly visible on the dashboard.", r.label, r.expected)
	}

	return nil
}

// OpenProject searches the listing for a project by name and opens its
// card. Used by suites that resume from a scratch handoff.
func (p *ProjectPage) OpenProject(name string) error {
	steplog.Step("Opening project %q...", name)

	search := p.page.Locator(searchInput)
	if err := waitVisible(search, longWait); err != nil {
		return fmt.Errorf("project search control never appeared: %w", err)
	}
	if err := search.Click(); err != nil {
		return fmt.Errorf("failed to focus project search: %w", err)
	}
	if err := search.Fill(name); err != nil {
		return fmt.Errorf("failed to search for project: %w", err)
	}

	card := p.page.Locator(".mantine-SimpleGrid-root .mantine-Group-root", playwright.PageLocatorOptions{
		HasText: name,
	})
	if err := waitVisible(card, mediumWait); err != nil {
		return fmt.Errorf("project card for %q never appeared: %w", name, err)
	}
	if err := card.Click(); err != nil {
		return fmt.Errorf("failed to open project card: %w", err)
	}

	steplog.Success("Opened project %q.", name)
	return nil
}
