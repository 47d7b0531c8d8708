package handler

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"

	"talent-sonar/internal/config"
	"talent-sonar/internal/delivery/http/middleware"
	"talent-sonar/internal/pkg/jwt"
	"talent-sonar/internal/pkg/response"
)

type AuthHandler struct {
	jwt jwt.Service
	cfg config.JWTConfig
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

func NewAuthHandler(jwtSvc jwt.Service, cfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{jwt: jwtSvc, cfg: cfg}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/token", h.Token)
}

// Token exchanges the shared dashboard client secret for an access
// token. There is no per-user identity; the dashboard is a single
// first-party client.
func (h *AuthHandler) Token(c fiber.Ctx) error {
	var req tokenRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.ClientID == "" || req.ClientSecret == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	if subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(h.cfg.ClientSecret)) != 1 {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid client credentials", nil, nil)
	}

	token, err := h.jwt.GenerateAccessToken(req.ClientID)
	if err != nil {
		return err
	}

	data := map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(h.cfg.ExpiresIn.Seconds()),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
