package http

import (
	"errors"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

func fieldErrors(c *fiber.Ctx, fields domain.FieldErrors, extra fiber.Map) error {
	body := fiber.Map{"errors": fields}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
}

// writeError maps usecase errors to responses.
func writeError(c *fiber.Ctx, err error) error {
	var verr *model.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return message(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return message(c, fiber.StatusUnauthorized, usecase.ErrInvalidCredentials.Error())
	case errors.As(err, &verr):
		return fieldErrors(c, verr.Fields, nil)
	}
	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return message(c, fiber.StatusInternalServerError, "internal error")
}
