package handlers

import (
	"errors"
	"net/http"

	"github.com/Madhav-Gupta-28/seafood-backend-go/checkout"
	"github.com/Madhav-Gupta-28/seafood-backend-go/models"
	"github.com/Madhav-Gupta-28/seafood-backend-go/notify"
	"github.com/labstack/echo/v4"
)

// GetPublicSettings returns the settings without the chat credentials.
func (h *Handler) GetPublicSettings(c echo.Context) error {
	settings, err := h.Settings.Get(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("get settings: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch settings")
	}
	return c.JSON(http.StatusOK, settings.Public())
}

func (h *Handler) GetSettings(c echo.Context) error {
	settings, err := h.Settings.Get(c.Request().Context())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch settings")
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(c echo.Context) error {
	var settings models.SiteSettings
	if err := c.Bind(&settings); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}
	settings.LastUpdated = h.timestamp()

	if err := h.Settings.Save(c.Request().Context(), settings); err != nil {
		c.Logger().Errorf("save settings: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to save settings")
	}
	return c.JSON(http.StatusOK, settings)
}

// TestTelegram sends the fixed test message with the saved credentials.
func (h *Handler) TestTelegram(c echo.Context) error {
	settings, err := h.Settings.Get(c.Request().Context())
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Failed to fetch settings")
	}

	ok, err := h.Notifier.SendNotification(c.Request().Context(), settings.TelegramBotToken, settings.TelegramChatID, notify.TestMessage)
	if errors.Is(err, notify.ErrMissingCredentials) {
		return errorJSON(c, http.StatusBadRequest, "請先輸入 Bot Token 與 Chat ID")
	}
	if err != nil || !ok {
		if err == nil {
			err = checkout.ErrNotificationFailed
		}
		c.Logger().Warnf("telegram test: %v", err)
		return errorJSON(c, http.StatusBadGateway, "Telegram 發送失敗")
	}
	return c.JSON(http.StatusOK, map[string]bool{"sent": true})
}

type area struct {
	City      string   `json:"city"`
	Districts []string `json:"districts"`
}

// GetAreas lists the delivery cities with their districts.
func (h *Handler) GetAreas(c echo.Context) error {
	cities := checkout.Cities()
	areas := make([]area, 0, len(cities))
	for _, city := range cities {
		areas = append(areas, area{City: city, Districts: checkout.Districts(city)})
	}
	return c.JSON(http.StatusOK, areas)
}
