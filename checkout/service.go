package checkout

import (
	"fmt"
	"time"

	"shopcart-go/cart"
	"shopcart-go/infrastructure/logger"
	"shopcart-go/monitor/logschema"
	monmetrics "shopcart-go/monitor/metrics"
	"shopcart-go/subscription"
	"shopcart-go/userapi"
)

// UserSource 获取用户信息；userapi.Client 即为实现。
type UserSource interface {
	FetchUser(id int64) (userapi.User, error)
}

// Metrics 结算服务依赖的指标项，可注入 Prometheus 或 mock。
type Metrics struct {
	Quotes   monmetrics.Counter
	Failures monmetrics.Counter
	Latency  monmetrics.Histogram
}

// Quote 一次结算报价。
type Quote struct {
	User     userapi.User
	Member   bool
	Subtotal float64
	Discount float64
	Total    float64
	Items    []cart.Item
}

// Service 组合购物车、用户服务与订阅判断得出报价。
// 非并发安全，与 Ledger 一致由调用方串行化。
type Service struct {
	Ledger      *cart.Ledger
	Users       UserSource
	Subs        subscription.Service
	DiscountPct float64 // 会员折扣（百分比）
	Log         *logger.Logger
	Metrics     Metrics
}

// QuoteOrder 为指定用户生成报价；订阅已到期则不享受会员折扣。
func (s *Service) QuoteOrder(userID int64, subExpiry time.Time) (Quote, error) {
	var q Quote
	if s.Ledger == nil || s.Users == nil {
		return q, fmt.Errorf("checkout service not initialized")
	}
	start := time.Now()

	user, err := s.Users.FetchUser(userID)
	if err != nil {
		if s.Metrics.Failures != nil {
			s.Metrics.Failures.Inc()
		}
		if s.Log != nil {
			s.Log.LogError(err, map[string]interface{}{"user_id": userID})
		}
		return q, fmt.Errorf("fetch user %d: %w", userID, err)
	}

	q.User = user
	q.Member = !s.Subs.IsExpired(subExpiry)
	q.Subtotal = s.Ledger.Total()
	if q.Member && s.DiscountPct > 0 {
		q.Discount = q.Subtotal * s.DiscountPct / 100
	}
	q.Total = q.Subtotal - q.Discount
	q.Items = s.Ledger.Items()

	if s.Metrics.Quotes != nil {
		s.Metrics.Quotes.Inc()
	}
	if s.Metrics.Latency != nil {
		s.Metrics.Latency.Observe(time.Since(start).Seconds())
	}
	s.logQuote(q)
	return q, nil
}

func (s *Service) logQuote(q Quote) {
	if s.Log == nil {
		return
	}
	fields := map[string]interface{}{
		"user_id":  q.User.ID,
		"subtotal": q.Subtotal,
		"total":    q.Total,
		"member":   q.Member,
	}
	if err := logschema.Validate("checkout_event", fields); err != nil {
		s.Log.LogError(err, nil)
		return
	}
	s.Log.LogCheckout("quote", q.User.ID, fields)
}
