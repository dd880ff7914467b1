package config

// ValidateParams 额外验证热更新时允许调整的参数。
func ValidateParams(cfg AppConfig) error {
	if cfg.Checkout.MemberDiscountPct < 0 || cfg.Checkout.MemberDiscountPct >= 100 {
		return ErrInvalid("checkout.memberDiscountPct must be in [0,100)")
	}
	if len(cfg.Catalog) == 0 {
		return ErrInvalid("catalog must not be empty")
	}
	for name, p := range cfg.Catalog {
		if p.UnitPrice < 0 {
			return ErrInvalid("catalog." + name + ".unitPrice must be >= 0")
		}
	}
	return nil
}

// ErrInvalid 用于参数验证错误。
type ErrInvalid string

func (e ErrInvalid) Error() string { return string(e) }
