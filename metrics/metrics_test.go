package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCounters(t *testing.T) {
	m := NewCheckout()

	m.OrderFinalized("AwaitingTransfer")
	m.OrderFinalized("AwaitingTransfer")
	m.OrderFinalized("Processing")
	m.SideEffectFailed("persist")
	m.Redirect("map", 1100*time.Millisecond)
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersFinalized.WithLabelValues("AwaitingTransfer")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersFinalized.WithLabelValues("Processing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sideEffectFailures.WithLabelValues("persist")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.redirects.WithLabelValues("map")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsActive))

	expected := `
# HELP checkout_side_effect_failures_total Failed persist, notify and publish attempts.
# TYPE checkout_side_effect_failures_total counter
checkout_side_effect_failures_total{effect="persist"} 1
`
	require.NoError(t, testutil.CollectAndCompare(m.sideEffectFailures, strings.NewReader(expected)))
}

func TestCheckoutHandler(t *testing.T) {
	m := NewCheckout()
	m.OrderFinalized("Processing")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `checkout_orders_finalized_total{status="Processing"} 1`)
	assert.Contains(t, rec.Body.String(), "checkout_sessions_active 0")
}
