package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestMissingConfigFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if cfg.Port == 0 {
		t.Fatalf("defaults should set a port")
	}
	if !DevelopmentMode(cfg) {
		t.Fatalf("no database coordinates should mean development mode")
	}
}

func TestPlaceholderDSNMeansDevelopmentMode(t *testing.T) {
	for _, dsn := range []string{"", "your-database-dsn", "ChangeMe"} {
		cfg := &AppConfig{DSN: dsn}
		if !DevelopmentMode(cfg) {
			t.Errorf("dsn %q should be development mode", dsn)
		}
	}

	cfg := &AppConfig{DSN: "user:pw@tcp(db:3306)/folio?parseTime=true"}
	if DevelopmentMode(cfg) {
		t.Fatalf("real dsn should not be development mode")
	}
}

func TestDiscreteDatabaseFieldsBuildDSN(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.internal
  port: 3306
  user: folio
  password: secret
  name: folio
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if DevelopmentMode(cfg) {
		t.Fatalf("configured database should disable development mode, dsn=%q", cfg.DSN)
	}
	if cfg.DSN == "" {
		t.Fatalf("dsn should be synthesized from discrete fields")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_PORT", "9999")
	t.Setenv("FOLIO_DSN", "user:pw@tcp(other:3306)/folio")
	t.Setenv("FOLIO_JWT_SECRET", "override-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9999 {
		t.Fatalf("FOLIO_PORT ignored, got %d", cfg.Port)
	}
	if cfg.DSN != "user:pw@tcp(other:3306)/folio" {
		t.Fatalf("FOLIO_DSN ignored, got %q", cfg.DSN)
	}
	if cfg.JWTSecret != "override-secret" {
		t.Fatalf("FOLIO_JWT_SECRET ignored, got %q", cfg.JWTSecret)
	}
	if DevelopmentMode(cfg) {
		t.Fatalf("FOLIO_DSN should disable development mode")
	}
}

func TestStorageConfigured(t *testing.T) {
	cfg := &AppConfig{}
	if StorageConfigured(cfg) {
		t.Fatalf("empty storage should not count as configured")
	}

	cfg.Storage = StorageConfig{
		AccessKeyID:     "your-access-key-id",
		SecretAccessKey: "real",
		Bucket:          "folio",
	}
	if StorageConfigured(cfg) {
		t.Fatalf("placeholder access key should not count as configured")
	}

	cfg.Storage.AccessKeyID = "AKIAREAL"
	if !StorageConfigured(cfg) {
		t.Fatalf("real credentials should count as configured")
	}
}
