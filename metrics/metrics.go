// Package metrics provides Prometheus metrics for the shop service
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopcart-go/monitor"
)

var (
	// ItemsAdded 按商品名统计入车次数
	ItemsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: monitor.MetricItemsAdded,
		Help: "Number of items added to the cart",
	}, []string{"name"})

	// ItemsRemoved 统计移除操作次数
	ItemsRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: monitor.MetricItemsRemoved,
		Help: "Number of remove operations on the cart",
	})

	// CartClears 统计清空次数
	CartClears = promauto.NewCounter(prometheus.CounterOpts{
		Name: monitor.MetricCartCleared,
		Help: "Number of times the cart was cleared",
	})

	// CartTotal 当前购物车总价
	CartTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: monitor.MetricCartTotal,
		Help: "Current cart total price",
	})

	// CartItems 当前购物车条目数量之和
	CartItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: monitor.MetricCartItems,
		Help: "Current cart item count",
	})

	// Quotes 结算报价次数
	Quotes = promauto.NewCounter(prometheus.CounterOpts{
		Name: monitor.MetricQuotes,
		Help: "Number of checkout quotes produced",
	})

	// QuoteFailures 结算失败次数
	QuoteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: monitor.MetricQuoteFailures,
		Help: "Number of failed checkout quotes",
	})

	// QuoteLatency 结算耗时（秒）
	QuoteLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    monitor.MetricQuoteLatency,
		Help:    "Latency of checkout quotes",
		Buckets: prometheus.DefBuckets,
	})

	// APIRequests 对外 HTTP 请求计数
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: monitor.MetricAPIRequests,
		Help: "Number of HTTP API requests",
	}, []string{"method", "status"})

	// FeedBroadcasts 推送给 websocket 订阅者的快照数
	FeedBroadcasts = promauto.NewCounter(prometheus.CounterOpts{
		Name: monitor.MetricFeedBroadcasts,
		Help: "Number of cart snapshots broadcast over the feed",
	})
)

// UpdateCartMetrics 同步购物车聚合指标
func UpdateCartMetrics(total float64, itemCount int) {
	CartTotal.Set(total)
	CartItems.Set(float64(itemCount))
}

// IncrementItemAdded 记录一次入车
func IncrementItemAdded(name string) {
	ItemsAdded.WithLabelValues(name).Inc()
}

// IncrementAPIRequest 记录一次对外请求
func IncrementAPIRequest(method, status string) {
	APIRequests.WithLabelValues(method, status).Inc()
}

// StartMetricsServer 启动Prometheus指标服务器
func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		_ = http.ListenAndServe(addr, nil)
	}()
}
