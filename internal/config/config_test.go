package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// viper 是全局单例，AddConfigPath 会在多次调用间累积
func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	viper.Reset()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: debug
database:
  host: localhost
  port: 3306
  user: root
  password: root
  dbname: quiz_api
jwt:
  secret: test-secret
  expire_hours: 2
redis:
  host: localhost
  port: 6379
`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.Server.Port)
	}
	if cfg.JWT.ExpireTime != 2*time.Hour {
		t.Fatalf("expected 2h expire, got %v", cfg.JWT.ExpireTime)
	}
	if cfg.JWT.RefreshExpire != 7*24*time.Hour {
		t.Fatalf("expected default refresh expire, got %v", cfg.JWT.RefreshExpire)
	}
	if cfg.Cache.ActiveQuizTTL != 30*time.Second {
		t.Fatalf("expected default cache ttl, got %v", cfg.Cache.ActiveQuizTTL)
	}
}

func TestLoadConfigReleaseModeWeakSecret(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: release
jwt:
  secret: short
  expire_hours: 2
`)

	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("expected error for weak secret in release mode")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	viper.Reset()
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
