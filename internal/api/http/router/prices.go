package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glider_backend/internal/api/http/handler"
)

func (r *Router) registerPriceRoutes(api fiber.Router, h *handler.PricesHandler) {
	api.Get("/prices", h.Get)
}
