package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCartMetrics(t *testing.T) {
	// Reset metrics to initial state
	CartTotal.Set(0)
	CartItems.Set(0)

	// Update metrics
	UpdateCartMetrics(24.50, 5)

	// Check metrics
	if testutil.ToFloat64(CartTotal) != 24.50 {
		t.Errorf("Expected CartTotal to be 24.50, got %f", testutil.ToFloat64(CartTotal))
	}

	if testutil.ToFloat64(CartItems) != 5 {
		t.Errorf("Expected CartItems to be 5, got %f", testutil.ToFloat64(CartItems))
	}
}

func TestIncrementFunctions(t *testing.T) {
	// Reset counters to initial state
	ItemsAdded.Reset()
	APIRequests.Reset()

	// Increment counters
	IncrementItemAdded("Book")
	IncrementItemAdded("Book")
	IncrementItemAdded("Pen")
	IncrementAPIRequest("GET", "200")

	// Check counters
	if got := testutil.ToFloat64(ItemsAdded.WithLabelValues("Book")); got != 2 {
		t.Errorf("Expected ItemsAdded[Book] to be 2, got %f", got)
	}

	if got := testutil.ToFloat64(ItemsAdded.WithLabelValues("Pen")); got != 1 {
		t.Errorf("Expected ItemsAdded[Pen] to be 1, got %f", got)
	}

	if got := testutil.ToFloat64(APIRequests.WithLabelValues("GET", "200")); got != 1 {
		t.Errorf("Expected APIRequests[GET,200] to be 1, got %f", got)
	}
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(ItemsRemoved)
	ItemsRemoved.Inc()
	if testutil.ToFloat64(ItemsRemoved) != before+1 {
		t.Errorf("Expected ItemsRemoved to increment")
	}

	before = testutil.ToFloat64(CartClears)
	CartClears.Inc()
	if testutil.ToFloat64(CartClears) != before+1 {
		t.Errorf("Expected CartClears to increment")
	}
}
