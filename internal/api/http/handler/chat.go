package handler

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glider_backend/internal/service/responder"
	"github.com/Alijeyrad/glider_backend/pkg/observability"
)

const maxChatMessageLen = 2000

type ChatHandler struct {
	responder *responder.Responder
	metrics   *observability.Metrics
}

func NewChatHandler(r *responder.Responder, metrics *observability.Metrics) *ChatHandler {
	return &ChatHandler{responder: r, metrics: metrics}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatMessage struct {
	Role     string             `json:"role"`
	Content  string             `json:"content"`
	Category responder.Category `json:"category,omitempty"`
}

func (h *ChatHandler) Reply(c fiber.Ctx) error {
	var req chatRequest
	if err := c.Bind().JSON(&req); err != nil {
		return invalidBody(c)
	}
	switch {
	case strings.TrimSpace(req.Message) == "":
		return invalidField(c, "message", "required", "message is required")
	case utf8.RuneCountInString(req.Message) > maxChatMessageLen:
		return invalidField(c, "message", "max", "message must be at most "+strconv.Itoa(maxChatMessageLen)+" characters")
	}

	reply := h.responder.Respond(req.Message)
	h.metrics.Reply(c.Context(), string(reply.Category))

	return ok(c, chatMessage{Role: "assistant", Content: reply.Content, Category: reply.Category})
}

func (h *ChatHandler) Welcome(c fiber.Ctx) error {
	return ok(c, chatMessage{Role: "assistant", Content: h.responder.Welcome()})
}
