package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
env: dev
server:
  listenAddr: ":8080"
  metricsAddr: ":9100"
userapi:
  baseURL: https://api.test
  apiKey: foo
checkout:
  memberDiscountPct: 10
catalog:
  Book:
    unitPrice: 10.00
  Pen:
    unitPrice: 1.50
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "dev" || cfg.UserAPI.APIKey != "foo" {
		t.Fatalf("unexpected cfg values: %+v", cfg)
	}
	if cfg.Catalog["Pen"].UnitPrice != 1.50 {
		t.Fatalf("unexpected catalog: %+v", cfg.Catalog)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, `
env: prod
userapi:
  baseURL: https://api.test
  apiKey: foo
checkout:
  memberDiscountPct: 5
`)
	t.Setenv("SHOP_USERAPI_BASE_URL", "https://api.env")
	t.Setenv("SHOP_USERAPI_KEY", "env-key")
	cfg, err := LoadWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UserAPI.BaseURL != "https://api.env" || cfg.UserAPI.APIKey != "env-key" {
		t.Fatalf("env overrides not applied: %+v", cfg.UserAPI)
	}
}

func TestValidate(t *testing.T) {
	err := Validate(AppConfig{})
	if err == nil {
		t.Fatalf("expected error for empty config")
	}
}

func TestValidateRejectsNegativePrice(t *testing.T) {
	cfg := AppConfig{
		Env:     "dev",
		UserAPI: UserAPIConfig{BaseURL: "https://api.test"},
		Catalog: map[string]ProductConfig{"Book": {UnitPrice: -1}},
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for negative price")
	}
}

func TestValidateParams(t *testing.T) {
	cfg := AppConfig{
		Env:      "dev",
		UserAPI:  UserAPIConfig{BaseURL: "https://api.test"},
		Checkout: CheckoutConfig{MemberDiscountPct: 150},
		Catalog:  map[string]ProductConfig{"Book": {UnitPrice: 10}},
	}
	if err := ValidateParams(cfg); err == nil {
		t.Fatalf("expected error for discount out of range")
	}
	cfg.Checkout.MemberDiscountPct = 10
	if err := ValidateParams(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Catalog = nil
	if err := ValidateParams(cfg); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}
