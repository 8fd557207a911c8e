package checkout

import (
	"sync"
	"time"
)

type RedirectKind string

const (
	MapLookup      RedirectKind = "map"
	PaymentGateway RedirectKind = "payment"
)

const (
	DefaultMapLookupDelay = 1 * time.Second
	DefaultPaymentDelay   = 2 * time.Second
)

type RedirectDelays struct {
	MapLookup      time.Duration
	PaymentGateway time.Duration
}

func DefaultRedirectDelays() RedirectDelays {
	return RedirectDelays{MapLookup: DefaultMapLookupDelay, PaymentGateway: DefaultPaymentDelay}
}

// RedirectSimulator stands in for the hand-off to the store map and the payment
// gateway. A redirect always completes after its delay and cannot be cancelled.
type RedirectSimulator struct {
	delays  RedirectDelays
	metrics Metrics

	mu         sync.Mutex
	inProgress bool
	target     RedirectKind
}

func NewRedirectSimulator(delays RedirectDelays, metrics Metrics) *RedirectSimulator {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &RedirectSimulator{delays: delays, metrics: metrics}
}

// Simulate blocks for the delay of kind. The in-progress flag and target are
// visible to other goroutines for the duration.
func (r *RedirectSimulator) Simulate(kind RedirectKind) {
	r.mu.Lock()
	r.inProgress = true
	r.target = kind
	r.mu.Unlock()

	start := time.Now()
	time.Sleep(r.delay(kind))

	r.mu.Lock()
	r.inProgress = false
	r.target = ""
	r.mu.Unlock()

	r.metrics.Redirect(string(kind), time.Since(start))
}

func (r *RedirectSimulator) InProgress() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inProgress
}

// Target is the kind of the running redirect, empty when none runs.
func (r *RedirectSimulator) Target() RedirectKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

func (r *RedirectSimulator) delay(kind RedirectKind) time.Duration {
	if kind == PaymentGateway {
		return r.delays.PaymentGateway
	}
	return r.delays.MapLookup
}
