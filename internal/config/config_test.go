package config

import (
	"strings"
	"testing"
)

func TestMaskedPostgresDSN_HidesPassword(t *testing.T) {
	cfg := &Config{}
	cfg.DB.Host = "db"
	cfg.DB.Port = 5432
	cfg.DB.User = "postgres"
	cfg.DB.Password = "s3cret"
	cfg.DB.Name = "chat_archive"
	cfg.DB.SSLMode = "disable"

	masked := cfg.MaskedPostgresDSN()
	if strings.Contains(masked, "s3cret") {
		t.Fatalf("masked DSN leaks the password: %q", masked)
	}
	if !strings.Contains(masked, "password=***") {
		t.Fatalf("masked DSN missing placeholder: %q", masked)
	}

	// The real DSN still carries it for the driver.
	if !strings.Contains(cfg.PostgresDSN(), "password=s3cret") {
		t.Fatalf("real DSN should contain the password")
	}
}
