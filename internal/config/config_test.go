package config

import (
	"testing"
)

func TestLoadAppConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "all variables set",
			env: map[string]string{
				"LOGIN_URL":     "https://app.example.com/login",
				"DASHBOARD_URL": "https://app.example.com/dashboard",
				"DATA_DIR":      "scratch",
				"RESULTS_DIR":   "artifacts",
			},
		},
		{
			name: "optional directories default",
			env: map[string]string{
				"LOGIN_URL":     "https://app.example.com/login",
				"DASHBOARD_URL": "https://app.example.com/dashboard",
			},
		},
		{
			name: "missing login URL",
			env: map[string]string{
				"DASHBOARD_URL": "https://app.example.com/dashboard",
			},
			wantErr: true,
		},
		{
			name: "missing dashboard URL",
			env: map[string]string{
				"LOGIN_URL": "https://app.example.com/login",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"LOGIN_URL", "DASHBOARD_URL", "DATA_DIR", "RESULTS_DIR"} {
				t.Setenv(key, tt.env[key])
			}

			config, err := LoadAppConfig()

			if tt.wantErr {
				if err == nil {
					t.Error("LoadAppConfig() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadAppConfig() unexpected error = %v", err)
			}

			if config.LoginURL != tt.env["LOGIN_URL"] {
				t.Errorf("LoginURL = %q, want %q", config.LoginURL, tt.env["LOGIN_URL"])
			}
			if tt.env["DATA_DIR"] == "" && config.DataDir != "data" {
				t.Errorf("DataDir = %q, want default %q", config.DataDir, "data")
			}
			if tt.env["RESULTS_DIR"] == "" && config.ResultsDir != "test-results" {
				t.Errorf("ResultsDir = %q, want default %q", config.ResultsDir, "test-results")
			}
		})
	}
}

func TestLoadCredentials(t *testing.T) {
	t.Run("user credentials", func(t *testing.T) {
		t.Setenv("USER_EMAIL", "qa@example.com")
		t.Setenv("USER_PASSWORD", "secret")

		creds, err := LoadUserCredentials()
		if err != nil {
			t.Fatalf("LoadUserCredentials() unexpected error = %v", err)
		}
		if creds.Email != "qa@example.com" || creds.Password != "secret" {
			t.Errorf("LoadUserCredentials() = %+v, want qa@example.com/secret", creds)
		}
	})

	t.Run("missing vendor password", func(t *testing.T) {
		t.Setenv("VENDOR_EMAIL", "vendor@example.com")
		t.Setenv("VENDOR_PASSWORD", "")

		if _, err := LoadVendorCredentials(); err == nil {
			t.Error("LoadVendorCredentials() expected error for missing password")
		}
	})
}
