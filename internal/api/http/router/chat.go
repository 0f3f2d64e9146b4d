package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glider_backend/internal/api/http/handler"
)

func (r *Router) registerChatRoutes(api fiber.Router, h *handler.ChatHandler, limit fiber.Handler) {
	api.Post("/chat", limit, h.Reply)
	api.Get("/chat/welcome", h.Welcome)
}
