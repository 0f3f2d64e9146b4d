package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/glider_backend/pkg/reqctx"
)

// envelope is the body of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func ok(c fiber.Ctx, data any) error {
	return c.JSON(envelope{Success: true, Data: data})
}

func created(c fiber.Ctx, msg string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(envelope{Success: true, Message: msg, Data: data})
}

func validationFailed(c fiber.Ctx, errs any) error {
	return c.Status(fiber.StatusBadRequest).JSON(envelope{Message: "Validation error", Errors: errs})
}

// fieldError matches the shape of contact.FieldError so every 400 reads the same.
type fieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// invalidField rejects a request over a problem found in the handler itself,
// such as an undecodable body.
func invalidField(c fiber.Ctx, field, rule, msg string) error {
	return validationFailed(c, []fieldError{{Field: field, Rule: rule, Message: msg}})
}

func invalidBody(c fiber.Ctx) error {
	return invalidField(c, "body", "json", "request body must be a JSON object")
}

func internalError(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(envelope{Message: msg})
}

// ErrorHandler renders errors that escape handlers and middleware, such as
// unknown routes, rate limiting and the admin guard, in the same envelope.
func ErrorHandler(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(envelope{Message: fe.Message})
	}

	reqctx.Logger(c.Context(), slog.Default()).ErrorContext(c.Context(), "unhandled request error",
		slog.String("path", c.Path()),
		slog.Any("error", err),
	)
	return internalError(c, "Internal server error")
}
