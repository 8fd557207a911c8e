package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Madhav-Gupta-28/seafood-backend-go/checkout"
	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"github.com/Madhav-Gupta-28/seafood-backend-go/storefront"
	"github.com/labstack/echo/v4"
)

type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Save(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (models.SiteSettings, error)
	Save(ctx context.Context, s models.SiteSettings) error
}

type OrderRepository interface {
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus, lastUpdated string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type AdminCredentials struct {
	Email        string
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

// Handler serves the storefront, checkout and admin endpoints.
type Handler struct {
	Products ProductRepository
	Settings SettingsRepository
	Orders   OrderRepository
	Book     *storefront.OrderBook
	Sessions *checkout.Manager
	Notifier checkout.Notifier
	Admin    AdminCredentials
	Location *time.Location
	Now      func() time.Time
}

func (h *Handler) timestamp() string {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	loc := h.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc).Format(models.OrderTimeLayout)
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

// checkoutError maps wizard errors to HTTP responses.
func checkoutError(c echo.Context, err error) error {
	var verr *checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":    "請填寫完整配送資訊",
			"validity": verr.Validity,
		})
	case errors.Is(err, checkout.ErrSessionNotFound):
		return errorJSON(c, http.StatusNotFound, "Checkout session not found")
	case errors.Is(err, checkout.ErrSubmitInProgress),
		errors.Is(err, checkout.ErrRedirectInProgress),
		errors.Is(err, checkout.ErrWrongStep),
		errors.Is(err, checkout.ErrNotPickup),
		errors.Is(err, checkout.ErrIntegrationDisabled),
		errors.Is(err, checkout.ErrNoStoreType),
		errors.Is(err, checkout.ErrStoreFromMap):
		return errorJSON(c, http.StatusConflict, err.Error())
	case errors.Is(err, checkout.ErrUnknownCity),
		errors.Is(err, checkout.ErrUnknownDistrict),
		errors.Is(err, checkout.ErrUnknownTimeSlot),
		errors.Is(err, checkout.ErrUnknownStore),
		errors.Is(err, checkout.ErrInvalidStoreType):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	default:
		c.Logger().Errorf("checkout: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Checkout failed")
	}
}
