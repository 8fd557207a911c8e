package handlers

import (
	"errors"
	"net/http"

	"github.com/Madhav-Gupta-28/seafood-backend-go/database"
	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"github.com/labstack/echo/v4"
)

// GetProducts lists the active products.
func (h *Handler) GetProducts(c echo.Context) error {
	products, err := h.Products.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list products: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch products")
	}

	active := []models.Product{}
	for _, p := range products {
		if p.Active() {
			active = append(active, p)
		}
	}
	return c.JSON(http.StatusOK, active)
}

func (h *Handler) GetProduct(c echo.Context) error {
	product, err := h.Products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "Product not found")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch product")
	}
	return c.JSON(http.StatusOK, product)
}

// ListAllProducts includes hidden products for the admin console.
func (h *Handler) ListAllProducts(c echo.Context) error {
	products, err := h.Products.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) SaveProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}
	product.ID = c.Param("id")
	if product.Title == "" || product.Price < 0 {
		return errorJSON(c, http.StatusBadRequest, "Product needs a title and a non-negative price")
	}
	if product.Category != "" && product.Category != models.CategoryPickup && product.Category != models.CategoryDelivery {
		return errorJSON(c, http.StatusBadRequest, "Invalid product category")
	}

	if err := h.Products.Save(c.Request().Context(), product); err != nil {
		c.Logger().Errorf("save product: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to save product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	if err := h.Products.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "Product not found")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete product")
	}
	return c.NoContent(http.StatusNoContent)
}
