package storefront

import (
	"errors"
	"strings"
	"sync"

	"github.com/Madhav-Gupta-28/seafood-backend-go/checkout"
	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
)

const PageSize = 15

var ErrOrderNotFound = errors.New("order not found")

// OrderBook is the in-memory order list behind the order query screen and
// the admin console. Completed checkouts are prepended.
type OrderBook struct {
	logger checkout.Logger

	mu     sync.RWMutex
	orders []models.Order
}

var _ checkout.Host = (*OrderBook)(nil)

func NewOrderBook(logger checkout.Logger) *OrderBook {
	return &OrderBook{logger: logger}
}

// Load replaces the book with orders, which are expected newest first.
func (b *OrderBook) Load(orders []models.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = append([]models.Order(nil), orders...)
}

func (b *OrderBook) OnComplete(order models.Order) {
	b.mu.Lock()
	b.orders = append([]models.Order{order}, b.orders...)
	b.mu.Unlock()
	b.logger.Infof("order %s added to the order book", order.ID)
}

func (b *OrderBook) OnCancel(sessionID string) {
	b.logger.Infof("checkout %s closed without an order", sessionID)
}

func (b *OrderBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.orders)
}

func (b *OrderBook) Get(id string) (models.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, o := range b.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

type SearchBy string

const (
	SearchByID    SearchBy = "id"
	SearchByPhone SearchBy = "phone"
)

// Search matches a case-insensitive id substring or a phone substring.
// A blank query matches nothing.
func (b *OrderBook) Search(by SearchBy, q string) []models.Order {
	if strings.TrimSpace(q) == "" {
		return []models.Order{}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	lower := strings.ToLower(q)
	found := []models.Order{}
	for _, o := range b.orders {
		var ok bool
		if by == SearchByPhone {
			ok = strings.Contains(o.CustomerPhone, q)
		} else {
			ok = strings.Contains(strings.ToLower(o.ID), lower)
		}
		if ok {
			found = append(found, o)
		}
	}
	return found
}

// SetStatus changes the status of order id in the book.
func (b *OrderBook) SetStatus(id string, status models.OrderStatus, lastUpdated string) (models.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID == id {
			b.orders[i].Status = status
			b.orders[i].LastUpdated = lastUpdated
			return b.orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (b *OrderBook) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = nil
}
