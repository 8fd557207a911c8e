package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Madhav-Gupta-28/seafood-backend-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/seafood-backend-go/middleware"
	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSettings struct{ s models.SiteSettings }

func (f staticSettings) Get(context.Context) (models.SiteSettings, error) { return f.s, nil }
func (f staticSettings) Save(context.Context, models.SiteSettings) error  { return nil }

func newServer() *echo.Echo {
	return newServerWithSecret("s3cret")
}

func newServerWithSecret(secret string) *echo.Echo {
	e := echo.New()
	settings := models.DefaultSiteSettings()
	settings.TelegramBotToken = "bot-token"
	settings.TelegramChatID = "42"
	h := &handlers.Handler{
		Settings: staticSettings{s: settings},
		Admin:    handlers.AdminCredentials{JWTSecret: secret},
	}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("checkout_orders_finalized_total 0\n"))
	})
	SetupRoutes(e, h, metrics)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndMetrics(t *testing.T) {
	e := newServer()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "checkout_orders_finalized_total")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	e := newServer()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := customMiddleware.GenerateToken("s3cret", "owner@seafood.tw", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = serve(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Public settings need no token.
	rec = serve(e, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesClosedWithoutSecret(t *testing.T) {
	e := newServerWithSecret("")

	token, err := customMiddleware.GenerateToken("", "someone@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := serve(e, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "bot-token")
}
