package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathPerRole(t *testing.T) {
	store := NewStore("state")

	tests := []struct {
		role Role
		want string
	}{
		{RolePrimary, filepath.Join("state", "sessionState.json")},
		{RoleVendor, filepath.Join("state", "Vendor_sessionState.json")},
		{RoleJobFlow, filepath.Join("state", "jobsessionState.json")},
	}

	for _, tt := range tests {
		if got := store.Path(tt.role); got != tt.want {
			t.Errorf("Path(%s) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if store.Exists(RolePrimary) {
		t.Error("Exists() = true before any session was saved")
	}

	if err := os.WriteFile(store.Path(RolePrimary), []byte(`{"cookies":[],"origins":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if !store.Exists(RolePrimary) {
		t.Error("Exists() = false after writing session state")
	}
	if store.Exists(RoleVendor) {
		t.Error("Exists(vendor) = true, roles should not share state files")
	}
}

func TestContextOptionsRequiresStoredSession(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if _, err := store.ContextOptions(RolePrimary); err == nil {
		t.Fatal("ContextOptions() expected error for missing session state")
	}

	if err := os.WriteFile(store.Path(RolePrimary), []byte(`{"cookies":[],"origins":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := store.ContextOptions(RolePrimary)
	if err != nil {
		t.Fatalf("ContextOptions() unexpected error = %v", err)
	}
	if opts.StorageStatePath == nil || *opts.StorageStatePath != store.Path(RolePrimary) {
		t.Errorf("StorageStatePath = %v, want %q", opts.StorageStatePath, store.Path(RolePrimary))
	}
	if opts.Viewport == nil || opts.Viewport.Width != 1280 || opts.Viewport.Height != 720 {
		t.Errorf("Viewport = %+v, want 1280x720", opts.Viewport)
	}
}

func TestClean(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	for _, role := range []Role{RolePrimary, RoleVendor, RoleJobFlow} {
		if err := os.WriteFile(store.Path(role), []byte(`{}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.Clean(); err != nil {
		t.Fatalf("Clean() unexpected error = %v", err)
	}
	for _, role := range []Role{RolePrimary, RoleVendor, RoleJobFlow} {
		if store.Exists(role) {
			t.Errorf("session for %s still exists after Clean()", role)
		}
	}

	if err := store.Clean(); err != nil {
		t.Errorf("Clean() on empty store unexpected error = %v", err)
	}
}
