package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Madhav-Gupta-28/seafood-backend-go/checkout"
	"github.com/Madhav-Gupta-28/seafood-backend-go/database"
	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"github.com/Madhav-Gupta-28/seafood-backend-go/notify"
	"github.com/Madhav-Gupta-28/seafood-backend-go/storefront"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memProducts struct {
	mu       sync.Mutex
	products map[string]models.Product
}

func (m *memProducts) List(context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Product{}
	for _, id := range []string{"p1", "p2", "p3", "hidden"} {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) Get(_ context.Context, id string) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return models.Product{}, fmt.Errorf("product %s: %w", id, database.ErrNotFound)
	}
	return p, nil
}

func (m *memProducts) Save(_ context.Context, p models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
	return nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

type memSettings struct {
	mu       sync.Mutex
	settings models.SiteSettings
}

func (m *memSettings) Get(context.Context) (models.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *memSettings) Save(_ context.Context, s models.SiteSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
	return nil
}

type memOrders struct {
	mu       sync.Mutex
	orders   map[string]models.Order
	persistN int
}

func (m *memOrders) PersistOrder(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persistN++
	m.orders[o.ID] = *o
	return nil
}

func (m *memOrders) UpdateStatus(_ context.Context, id string, status models.OrderStatus, lastUpdated string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return database.ErrNotFound
	}
	o.Status = status
	o.LastUpdated = lastUpdated
	m.orders[id] = o
	return nil
}

func (m *memOrders) DeleteAll(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.orders))
	m.orders = map[string]models.Order{}
	return n, nil
}

type stubNotifier struct {
	ok   bool
	err  error
	sent []string
}

func (n *stubNotifier) SendNotification(_ context.Context, token, chatID, message string) (bool, error) {
	if token == "" || chatID == "" {
		return false, notify.ErrMissingCredentials
	}
	n.sent = append(n.sent, message)
	return n.ok, n.err
}

type testEnv struct {
	e        *echo.Echo
	h        *Handler
	products *memProducts
	settings *memSettings
	orders   *memOrders
	notifier *stubNotifier
}

var taipei = time.FixedZone("Asia/Taipei", 8*60*60)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	hidden := false
	products := &memProducts{products: map[string]models.Product{
		"p1":     {ID: "p1", Title: "小資減脂海鮮組", Price: 1099},
		"p3":     {ID: "p3", Title: "過年澎湃團聚組", Price: 3999, Category: models.CategoryDelivery},
		"hidden": {ID: "hidden", Title: "下架商品", Price: 1, IsActive: &hidden},
	}}
	settings := &memSettings{settings: models.DefaultSiteSettings()}
	orders := &memOrders{orders: map[string]models.Order{}}
	notifier := &stubNotifier{ok: true}
	book := storefront.NewOrderBook(log.New("test"))

	now := func() time.Time { return time.Date(2024, 3, 7, 10, 0, 0, 0, taipei) }
	sessions := checkout.NewManager(book, checkout.FinalizerDeps{
		Store:    orders,
		Notifier: notifier,
		Location: taipei,
		Now:      now,
		Intn:     func(int) int { return 42 },
	}, checkout.RedirectDelays{MapLookup: 10 * time.Millisecond, PaymentGateway: 10 * time.Millisecond})

	hash, err := bcrypt.GenerateFromPassword([]byte("fresh-fish"), bcrypt.MinCost)
	require.NoError(t, err)

	h := &Handler{
		Products: products,
		Settings: settings,
		Orders:   orders,
		Book:     book,
		Sessions: sessions,
		Notifier: notifier,
		Admin: AdminCredentials{
			Email:        "owner@seafood.tw",
			PasswordHash: string(hash),
			JWTSecret:    "s3cret",
			TokenTTL:     time.Hour,
		},
		Location: taipei,
		Now:      now,
	}
	e := echo.New()
	registerRoutes(e, h)
	return &testEnv{e: e, h: h, products: products, settings: settings, orders: orders, notifier: notifier}
}

// registerRoutes mirrors the public and admin routes without the auth middleware.
func registerRoutes(e *echo.Echo, h *Handler) {
	e.GET("/api/products", h.GetProducts)
	e.GET("/api/products/:id", h.GetProduct)
	e.GET("/api/settings", h.GetPublicSettings)
	e.GET("/api/areas", h.GetAreas)
	e.GET("/api/orders/search", h.SearchOrders)
	e.POST("/api/checkout", h.StartCheckout)
	e.GET("/api/checkout/:id", h.GetCheckout)
	e.PATCH("/api/checkout/:id/shipping", h.UpdateShipping)
	e.POST("/api/checkout/:id/touch/:field", h.TouchField)
	e.POST("/api/checkout/:id/store-type", h.ChooseStoreType)
	e.GET("/api/checkout/:id/stores", h.ListStores)
	e.POST("/api/checkout/:id/store", h.SelectStore)
	e.POST("/api/checkout/:id/reselect", h.ReselectStore)
	e.POST("/api/checkout/:id/dismiss-map", h.DismissMap)
	e.POST("/api/checkout/:id/next", h.NextStep)
	e.POST("/api/checkout/:id/back", h.PreviousStep)
	e.POST("/api/checkout/:id/close", h.CloseCheckout)
	e.POST("/api/admin/login", h.AdminLogin)
	e.GET("/api/admin/orders", h.ListOrders)
	e.PUT("/api/admin/orders/:id/status", h.UpdateOrderStatus)
	e.DELETE("/api/admin/orders", h.DeleteOrders)
	e.GET("/api/admin/products", h.ListAllProducts)
	e.PUT("/api/admin/products/:id", h.SaveProduct)
	e.DELETE("/api/admin/products/:id", h.DeleteProduct)
	e.GET("/api/admin/settings", h.GetSettings)
	e.PUT("/api/admin/settings", h.UpdateSettings)
	e.POST("/api/admin/telegram/test", h.TestTelegram)
}

func (env *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
