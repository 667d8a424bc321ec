package config

import (
	"os"
	"strings"
	"testing"
)

// setRequired, zorunlu env değerlerini test için doldurur.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "./test.db")
	t.Setenv("SECRET_KEY", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	// t.Setenv orijinal değeri kaydeder, cleanup'ta geri yükler —
	// sonrasındaki Unsetenv ile "hiç set edilmemiş" durumu simüle edilir
	t.Setenv("SERVER_HOST", "x")
	t.Setenv("SERVER_PORT", "x")
	os.Unsetenv("SERVER_HOST")
	os.Unsetenv("SERVER_PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:9090" {
		t.Fatalf("Addr mismatch: got %q", cfg.Server.Addr())
	}
	if cfg.Database.URL != "./test.db" {
		t.Fatalf("Database.URL mismatch: got %q", cfg.Database.URL)
	}
	if cfg.JWT.Secret != "test-secret" {
		t.Fatalf("JWT.Secret mismatch")
	}
}

func TestLoad_MissingSecretKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "./test.db")
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for missing SECRET_KEY, got nil")
	}
	if !strings.Contains(err.Error(), "SECRET_KEY") {
		t.Fatalf("error should name SECRET_KEY, got: %v", err)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SECRET_KEY", "test-secret")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for missing DATABASE_URL, got nil")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("error should name DATABASE_URL, got: %v", err)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid SERVER_PORT, got nil")
	}
}
