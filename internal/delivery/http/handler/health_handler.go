package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"talent-sonar/internal/pkg/response"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    pinger
	cache pinger
}

func NewHealthHandler(db, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.HandleHealth)
}

// HandleHealth reports degraded rather than failing when the cache is
// down; only a database outage makes the service unhealthy.
func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	checks := map[string]string{}

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "down"
			return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", checks)
		}
		checks["database"] = "up"
	}
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			checks["cache"] = "down"
			status = "degraded"
		} else {
			checks["cache"] = "up"
		}
	}

	return response.Success(c, fiber.StatusOK, status, checks)
}
