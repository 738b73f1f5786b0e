package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
	"github.com/jhoicas/Khatabook-api/internal/application/usecase"
)

// SnapshotHandler historial de snapshots guardados.
type SnapshotHandler struct {
	uc *usecase.SnapshotUseCase
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(uc *usecase.SnapshotUseCase) *SnapshotHandler {
	return &SnapshotHandler{uc: uc}
}

// History GET /api/snapshots?limit=20
func (h *SnapshotHandler) History(c *fiber.Ctx) error {
	var in dto.SnapshotHistoryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit debe ser un entero"})
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.History(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
