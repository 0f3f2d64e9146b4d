package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glider_backend/internal/api/http/handler"
)

func (r *Router) registerContactRoutes(api fiber.Router, h *handler.ContactHandler, limit, adminOnly fiber.Handler) {
	api.Post("/contact", limit, h.Submit)
	api.Get("/contacts", adminOnly, h.List)
}
