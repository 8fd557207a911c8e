package handlers

import (
	"errors"
	"net/http"

	"github.com/Madhav-Gupta-28/seafood-backend-go/checkout"
	"github.com/Madhav-Gupta-28/seafood-backend-go/database"
	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"github.com/labstack/echo/v4"
)

type StartCheckoutRequest struct {
	ProductID string `json:"productId"`
}

type StoreTypeRequest struct {
	StoreType models.StoreType `json:"storeType"`
}

type SelectStoreRequest struct {
	StoreName string `json:"storeName"`
}

// StartCheckout opens a wizard for an active product with the current settings.
func (h *Handler) StartCheckout(c echo.Context) error {
	var req StartCheckoutRequest
	if err := c.Bind(&req); err != nil || req.ProductID == "" {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}

	ctx := c.Request().Context()
	product, err := h.Products.Get(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "Product not found")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch product")
	}
	if !product.Active() {
		return errorJSON(c, http.StatusNotFound, "Product not found")
	}

	settings, err := h.Settings.Get(ctx)
	if err != nil {
		c.Logger().Warnf("get settings, using defaults: %v", err)
		settings = models.DefaultSiteSettings()
	}

	w := h.Sessions.Start(product, settings)
	return c.JSON(http.StatusCreated, w.View())
}

func (h *Handler) wizard(c echo.Context) (*checkout.Wizard, error) {
	return h.Sessions.Get(c.Param("id"))
}

// withWizard runs fn on the session wizard and answers with its view.
func (h *Handler) withWizard(c echo.Context, fn func(w *checkout.Wizard) error) error {
	w, err := h.wizard(c)
	if err != nil {
		return checkoutError(c, err)
	}
	if err := fn(w); err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(http.StatusOK, w.View())
}

func (h *Handler) GetCheckout(c echo.Context) error {
	return h.withWizard(c, func(*checkout.Wizard) error { return nil })
}

func (h *Handler) UpdateShipping(c echo.Context) error {
	var patch checkout.ShippingPatch
	if err := c.Bind(&patch); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}
	return h.withWizard(c, func(w *checkout.Wizard) error { return w.Update(patch) })
}

func (h *Handler) TouchField(c echo.Context) error {
	field, ok := checkout.ParseField(c.Param("field"))
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "Unknown field")
	}
	return h.withWizard(c, func(w *checkout.Wizard) error { return w.Touch(field) })
}

// ChooseStoreType answers after the simulated map has loaded.
func (h *Handler) ChooseStoreType(c echo.Context) error {
	var req StoreTypeRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}
	return h.withWizard(c, func(w *checkout.Wizard) error { return w.ChooseStoreType(req.StoreType) })
}

func (h *Handler) ListStores(c echo.Context) error {
	w, err := h.wizard(c)
	if err != nil {
		return checkoutError(c, err)
	}
	stores, err := w.Stores()
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(http.StatusOK, stores)
}

func (h *Handler) SelectStore(c echo.Context) error {
	var req SelectStoreRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}
	return h.withWizard(c, func(w *checkout.Wizard) error { return w.SelectStore(req.StoreName) })
}

func (h *Handler) ReselectStore(c echo.Context) error {
	return h.withWizard(c, func(w *checkout.Wizard) error { return w.Reselect() })
}

func (h *Handler) DismissMap(c echo.Context) error {
	return h.withWizard(c, func(w *checkout.Wizard) error { return w.DismissMap() })
}

// NextStep leaves the shipping form or submits the order. Backend failures
// after submission are not reported to the shopper.
func (h *Handler) NextStep(c echo.Context) error {
	return h.withWizard(c, func(w *checkout.Wizard) error {
		_, err := w.Next(c.Request().Context())
		return err
	})
}

func (h *Handler) PreviousStep(c echo.Context) error {
	return h.withWizard(c, func(w *checkout.Wizard) error { return w.Back() })
}

func (h *Handler) CloseCheckout(c echo.Context) error {
	out, err := h.Sessions.Close(c.Param("id"))
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
