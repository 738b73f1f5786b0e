package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
	"github.com/jhoicas/Khatabook-api/internal/domain"
)

// respondError traduce errores de dominio a HTTP: 400 VALIDATION, 404 NOT_FOUND,
// 501 NOT_IMPLEMENTED y 500 INTERNAL.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnavailable):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// persistenceWarning devuelve true si err es nil o solo un fallo de persistencia.
// En ese caso la mutación quedó aplicada y se avisa con el header Warning.
func persistenceWarning(c *fiber.Ctx, err error) bool {
	if err == nil {
		return true
	}
	if !errors.Is(err, domain.ErrPersistence) {
		return false
	}
	// Los valores de header deben ser ASCII; los mensajes en español se escapan.
	c.Set("Warning", `199 khatabook `+strconv.QuoteToASCII(err.Error()))
	return true
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
