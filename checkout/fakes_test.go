package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
)

var taipei = time.FixedZone("Asia/Taipei", 8*60*60)

func fixedNow() time.Time {
	return time.Date(2024, 3, 7, 14, 5, 9, 0, taipei)
}

type fakePersister struct {
	mu        sync.Mutex
	orders    []models.Order
	persistFn func(ctx context.Context, order *models.Order) error
}

func (p *fakePersister) PersistOrder(ctx context.Context, order *models.Order) error {
	p.mu.Lock()
	p.orders = append(p.orders, *order)
	fn := p.persistFn
	p.mu.Unlock()
	if fn != nil {
		return fn(ctx, order)
	}
	return nil
}

func (p *fakePersister) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.orders)
}

type sentMessage struct {
	token, chatID, text string
}

type fakeNotifier struct {
	mu     sync.Mutex
	sent   []sentMessage
	sendFn func(ctx context.Context, token, chatID, message string) (bool, error)
}

func (n *fakeNotifier) SendNotification(ctx context.Context, token, chatID, message string) (bool, error) {
	n.mu.Lock()
	n.sent = append(n.sent, sentMessage{token, chatID, message})
	fn := n.sendFn
	n.mu.Unlock()
	if fn != nil {
		return fn(ctx, token, chatID, message)
	}
	return true, nil
}

func (n *fakeNotifier) calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type fakePublisher struct {
	mu        sync.Mutex
	published []models.Order
	err       error
}

func (p *fakePublisher) PublishOrderCreated(_ context.Context, order *models.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, *order)
	return p.err
}

type fakeHost struct {
	mu        sync.Mutex
	completed []models.Order
	cancelled []string
}

func (h *fakeHost) OnComplete(order models.Order) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed = append(h.completed, order)
}

func (h *fakeHost) OnCancel(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cancelled = append(h.cancelled, sessionID)
}

func testDeps(store OrderPersister, notifier Notifier) FinalizerDeps {
	return FinalizerDeps{
		Store:    store,
		Notifier: notifier,
		Location: taipei,
		Now:      fixedNow,
		Intn:     func(int) int { return 42 },
	}
}

func deliveryProduct() models.Product {
	return models.Product{ID: "p-crab", Title: "大閘蟹禮盒", Price: 1880, Category: models.CategoryDelivery}
}

func pickupProduct() models.Product {
	return models.Product{ID: "p-shrimp", Title: "白蝦", Price: 690}
}

func ptr[T any](v T) *T { return &v }
