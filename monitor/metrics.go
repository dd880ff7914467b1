package monitor

// 指标名称集中定义，metrics 包据此注册 Prometheus 指标。
const (
	MetricItemsAdded     = "cart_items_added_total"
	MetricItemsRemoved   = "cart_items_removed_total"
	MetricCartCleared    = "cart_cleared_total"
	MetricCartTotal      = "cart_total"
	MetricCartItems      = "cart_item_count"
	MetricQuotes         = "checkout_quotes_total"
	MetricQuoteFailures  = "checkout_quote_failures_total"
	MetricQuoteLatency   = "checkout_quote_latency_seconds"
	MetricAPIRequests    = "api_requests_total"
	MetricFeedBroadcasts = "feed_broadcasts_total"
)
