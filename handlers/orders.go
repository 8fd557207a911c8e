package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Madhav-Gupta-28/seafood-backend-go/database"
	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"github.com/Madhav-Gupta-28/seafood-backend-go/storefront"
	"github.com/labstack/echo/v4"
)

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// SearchOrders backs the shopper's order query screen.
func (h *Handler) SearchOrders(c echo.Context) error {
	by := storefront.SearchBy(c.QueryParam("by"))
	if by == "" {
		by = storefront.SearchByID
	}
	if by != storefront.SearchByID && by != storefront.SearchByPhone {
		return errorJSON(c, http.StatusBadRequest, "Invalid search type")
	}
	return c.JSON(http.StatusOK, h.Book.Search(by, c.QueryParam("q")))
}

func (h *Handler) ListOrders(c echo.Context) error {
	q := storefront.OrderQuery{
		Term: c.QueryParam("q"),
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
	}

	switch s := c.QueryParam("shipping"); s {
	case "", "all":
	case string(models.ShippingTypePickup), string(models.ShippingTypeDelivery):
		q.ShippingType = models.ShippingType(s)
	default:
		return errorJSON(c, http.StatusBadRequest, "Invalid shipping filter")
	}

	switch k := storefront.SortKey(c.QueryParam("sort")); k {
	case "":
	case storefront.SortByCustomer, storefront.SortByDate, storefront.SortByID:
		q.Sort = k
		q.Desc = c.QueryParam("dir") == "desc"
	default:
		return errorJSON(c, http.StatusBadRequest, "Invalid sort key")
	}

	if p := c.QueryParam("page"); p != "" {
		page, err := strconv.Atoi(p)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "Invalid page")
		}
		q.Page = page
	}

	return c.JSON(http.StatusOK, h.Book.Query(q))
}

// UpdateOrderStatus writes the new status to the store and the order book.
// Orders whose best-effort write failed exist only in the book.
func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}
	if !req.Status.Valid() {
		return errorJSON(c, http.StatusBadRequest, "Invalid order status")
	}

	id := c.Param("id")
	stamp := h.timestamp()

	storeErr := h.Orders.UpdateStatus(c.Request().Context(), id, req.Status, stamp)
	if storeErr != nil && !errors.Is(storeErr, database.ErrNotFound) {
		c.Logger().Errorf("update order status: %v", storeErr)
		return errorJSON(c, http.StatusInternalServerError, "Failed to update order")
	}

	order, err := h.Book.SetStatus(id, req.Status, stamp)
	if err != nil {
		if storeErr != nil {
			return errorJSON(c, http.StatusNotFound, "Order not found")
		}
		c.Logger().Warnf("order %s updated in store but missing from order book", id)
		return c.JSON(http.StatusOK, map[string]string{"id": id, "status": string(req.Status), "lastUpdated": stamp})
	}
	if storeErr != nil {
		c.Logger().Warnf("order %s missing from store, updated in order book only", id)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteOrders(c echo.Context) error {
	n, err := h.Orders.DeleteAll(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("delete orders: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete orders")
	}
	h.Book.Clear()
	return c.JSON(http.StatusOK, map[string]int64{"deleted": n})
}
