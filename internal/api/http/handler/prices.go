package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glider_backend/internal/service/prices"
)

type PricesHandler struct {
	svc prices.Service
}

func NewPricesHandler(svc prices.Service) *PricesHandler {
	return &PricesHandler{svc: svc}
}

// Get serves the last known snapshot; it never calls upstream.
func (h *PricesHandler) Get(c fiber.Ctx) error {
	return ok(c, h.svc.Snapshot())
}
