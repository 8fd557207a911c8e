package handlers

import (
	"net/http"

	"github.com/Madhav-Gupta-28/seafood-backend-go/middleware"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin checks the configured admin credentials and issues a token.
func (h *Handler) AdminLogin(c echo.Context) error {
	var credentials LoginRequest
	if err := c.Bind(&credentials); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request format")
	}

	if h.Admin.Email == "" || h.Admin.PasswordHash == "" || h.Admin.JWTSecret == "" {
		return errorJSON(c, http.StatusServiceUnavailable, "Admin login is not configured")
	}
	if credentials.Email != h.Admin.Email {
		return errorJSON(c, http.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.Admin.PasswordHash), []byte(credentials.Password)); err != nil {
		return errorJSON(c, http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := middleware.GenerateToken(h.Admin.JWTSecret, credentials.Email, h.Admin.TokenTTL)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
