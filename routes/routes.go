package routes

import (
	"net/http"

	"github.com/Madhav-Gupta-28/seafood-backend-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/seafood-backend-go/middleware"
	"github.com/labstack/echo/v4"
)

func SetupRoutes(e *echo.Echo, h *handlers.Handler, metrics http.Handler) {
	api := e.Group("/api")

	// Storefront
	api.GET("/products", h.GetProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/settings", h.GetPublicSettings)
	api.GET("/areas", h.GetAreas)
	api.GET("/orders/search", h.SearchOrders)

	// Checkout sessions
	co := api.Group("/checkout")
	co.POST("", h.StartCheckout)
	co.GET("/:id", h.GetCheckout)
	co.PATCH("/:id/shipping", h.UpdateShipping)
	co.POST("/:id/touch/:field", h.TouchField)
	co.POST("/:id/store-type", h.ChooseStoreType)
	co.GET("/:id/stores", h.ListStores)
	co.POST("/:id/store", h.SelectStore)
	co.POST("/:id/reselect", h.ReselectStore)
	co.POST("/:id/dismiss-map", h.DismissMap)
	co.POST("/:id/next", h.NextStep)
	co.POST("/:id/back", h.PreviousStep)
	co.POST("/:id/close", h.CloseCheckout)

	// Admin
	api.POST("/admin/login", h.AdminLogin)
	admin := api.Group("/admin", customMiddleware.AdminAuth(h.Admin.JWTSecret))
	admin.GET("/orders", h.ListOrders)
	admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
	admin.DELETE("/orders", h.DeleteOrders)
	admin.GET("/products", h.ListAllProducts)
	admin.PUT("/products/:id", h.SaveProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
	admin.GET("/settings", h.GetSettings)
	admin.PUT("/settings", h.UpdateSettings)
	admin.POST("/telegram/test", h.TestTelegram)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
}
