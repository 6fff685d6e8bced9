// Package session stores serialized browser authentication state
// (cookies and local storage) per identity so later runs can skip
// interactive login. State is invalidated only by deleting the file or
// by server-side expiry.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/playwright-community/playwright-go"
)

// Role names one authenticated identity within the suite.
type Role string

const (
	// RolePrimary is the project-owning user who creates projects, jobs
	// and bids, and ultimately awards and finalizes.
	RolePrimary Role = "primary"
	// RoleVendor is the invited vendor identity with its own context.
	RoleVendor Role = "vendor"
	// RoleJobFlow is the mid-flow snapshot taken at the end of the job
	// suite, after bids have been created and edited.
	RoleJobFlow Role = "jobflow"
)

// File names kept compatible with earlier runs of the suite.
var stateFiles = map[Role]string{
	RolePrimary: "sessionState.json",
	RoleVendor:  "Vendor_sessionState.json",
	RoleJobFlow: "jobsessionState.json",
}

// Store locates session-state files under a single directory.
type Store struct {
	dir string
}

// NewStore creates a session store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the storage-state file path for a role.
func (s *Store) Path(role Role) string {
	name, ok := stateFiles[role]
	if !ok {
		name = fmt.Sprintf("%s_sessionState.json", role)
	}
	return filepath.Join(s.dir, name)
}

// Exists reports whether a serialized session exists for the role.
func (s *Store) Exists(role Role) bool {
	_, err := os.Stat(s.Path(role))
	return err == nil
}

// Save captures the context's current cookies and storage into the
// role's state file. Call after a successful login, or mid-flow to
// snapshot an authenticated context.
func (s *Store) Save(ctx playwright.BrowserContext, role Role) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if _, err := ctx.StorageState(s.Path(role)); err != nil {
		return fmt.Errorf("failed to capture %s session state: %w", role, err)
	}
	return nil
}

// ContextOptions returns browser-context options that restore the
// role's stored session. A missing state file is a fatal setup failure
// for every suite that depends on it.
func (s *Store) ContextOptions(role Role) (playwright.BrowserNewContextOptions, error) {
	path := s.Path(role)
	if !s.Exists(role) {
		return playwright.BrowserNewContextOptions{},
			fmt.Errorf("no stored session for %s at %s (run the login suite first)", role, path)
	}

	return playwright.BrowserNewContextOptions{
		StorageStatePath: playwright.String(path),
		Viewport:         &playwright.Size{Width: 1280, Height: 720},
	}, nil
}

// FreshContextOptions returns options for an unauthenticated context,
// used by login flows that will establish a session themselves.
func FreshContextOptions() playwright.BrowserNewContextOptions {
	return playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1280, Height: 720},
	}
}

// Clean removes every stored session file.
func (s *Store) Clean() error {
	for role := range stateFiles {
		if err := os.Remove(s.Path(role)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s session state: %w", role, err)
		}
	}
	return nil
}
