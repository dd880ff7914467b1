package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig holds the main runtime configuration.
type AppConfig struct {
	Env      string                   `yaml:"env"`
	Server   ServerConfig             `yaml:"server"`
	UserAPI  UserAPIConfig            `yaml:"userapi"`
	Log      LogConfig                `yaml:"log"`
	Checkout CheckoutConfig           `yaml:"checkout"`
	Catalog  map[string]ProductConfig `yaml:"catalog"`
}

type ServerConfig struct {
	ListenAddr  string `yaml:"listenAddr"`
	MetricsAddr string `yaml:"metricsAddr"`
}

type UserAPIConfig struct {
	BaseURL string `yaml:"baseURL"`
	APIKey  string `yaml:"apiKey"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json 或 console
}

// CheckoutConfig 结算参数。
type CheckoutConfig struct {
	MemberDiscountPct float64 `yaml:"memberDiscountPct"` // 会员折扣（百分比）
}

// ProductConfig 商品目录里的单价。
type ProductConfig struct {
	UnitPrice float64 `yaml:"unitPrice"`
}

// Load reads YAML config from path and applies basic validation.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadWithEnvOverrides loads config then overrides sensitive fields from env vars if present.
func LoadWithEnvOverrides(path string) (AppConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if v := os.Getenv("SHOP_USERAPI_BASE_URL"); v != "" {
		cfg.UserAPI.BaseURL = v
	}
	if v := os.Getenv("SHOP_USERAPI_KEY"); v != "" {
		cfg.UserAPI.APIKey = v
	}
	return cfg, Validate(cfg)
}

// Validate ensures required fields are present.
func Validate(cfg AppConfig) error {
	if cfg.Env == "" {
		return errors.New("env is required")
	}
	if cfg.UserAPI.BaseURL == "" {
		return errors.New("userapi.baseURL is required (or env override)")
	}
	if cfg.Checkout.MemberDiscountPct < 0 || cfg.Checkout.MemberDiscountPct >= 100 {
		return errors.New("checkout.memberDiscountPct must be in [0,100)")
	}
	for name, p := range cfg.Catalog {
		if p.UnitPrice < 0 {
			return fmt.Errorf("catalog.%s.unitPrice must be >= 0", name)
		}
	}
	return nil
}
