package subscription

import "time"

// Service 订阅到期判断；Clock 为空时退回系统时间。
type Service struct {
	Clock Clock
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return SystemClock.Now()
	}
	return s.Clock.Now()
}

// IsExpired 当前时间晚于 expiry 时返回 true。
func (s Service) IsExpired(expiry time.Time) bool {
	return s.now().After(expiry)
}

// DaysUntilExpiry 距到期的整天数，已过期返回 0。
func (s Service) DaysUntilExpiry(expiry time.Time) int {
	delta := expiry.Sub(s.now())
	days := int(delta.Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
