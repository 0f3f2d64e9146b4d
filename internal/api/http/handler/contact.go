package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glider_backend/internal/service/contact"
)

const (
	msgSubmitted    = "You've been added to our waitlist! Check your email for confirmation."
	msgSubmitFailed = "Failed to submit contact form"
	msgListFailed   = "Failed to fetch contacts"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req contact.CreateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return invalidBody(c)
	}

	entry, err := h.svc.Submit(c.Context(), req)
	if err != nil {
		var verr contact.ValidationError
		if errors.As(err, &verr) {
			return validationFailed(c, verr.Fields)
		}
		return internalError(c, msgSubmitFailed)
	}
	return created(c, msgSubmitted, entry)
}

func (h *ContactHandler) List(c fiber.Ctx) error {
	entries, err := h.svc.List(c.Context(), contact.ListRequest{Type: c.Query("type")})
	if err != nil {
		return internalError(c, msgListFailed)
	}
	return ok(c, entries)
}
