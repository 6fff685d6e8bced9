package config

import (
	"fmt"
	"os"
)

// Credentials holds one identity's login credentials. They are consumed
// once by the login workflow and never persisted.
type Credentials struct {
	Email    string
	Password string
}

// LoadUserCredentials loads the primary user's credentials from environment variables
func LoadUserCredentials() (*Credentials, error) {
	return loadCredentials("USER_EMAIL", "USER_PASSWORD")
}

// LoadVendorCredentials loads the vendor identity's credentials from environment variables
func LoadVendorCredentials() (*Credentials, error) {
	return loadCredentials("VENDOR_EMAIL", "VENDOR_PASSWORD")
}

func loadCredentials(emailVar, passwordVar string) (*Credentials, error) {
	creds := Credentials{
		Email:    os.Getenv(emailVar),
		Password: os.Getenv(passwordVar),
	}

	if creds.Email == "" {
		return nil, fmt.Errorf("%s is required", emailVar)
	}
	if creds.Password == "" {
		return nil, fmt.Errorf("%s is required", passwordVar)
	}

	return &creds, nil
}
