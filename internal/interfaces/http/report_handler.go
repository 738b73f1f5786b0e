package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
	"github.com/jhoicas/Khatabook-api/internal/application/usecase"
)

// ReportHandler dashboard, feed y descargas.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard GET /api/dashboard
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard())
}

// Feed GET /api/feed?limit=20
func (h *ReportHandler) Feed(c *fiber.Ctx) error {
	var in dto.FeedRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit debe ser un entero"})
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.uc.Feed(in))
}

// ExportCustomer GET /api/customers/:id/export
func (h *ReportHandler) ExportCustomer(c *fiber.Ctx) error {
	return sendFile(c)(h.uc.ExportCustomer(c.Params("id")))
}

// Statement GET /api/customers/:id/statement
func (h *ReportHandler) Statement(c *fiber.Ctx) error {
	return sendFile(c)(h.uc.Statement(c.UserContext(), c.Params("id")))
}

// ExportAll GET /api/export/all
func (h *ReportHandler) ExportAll(c *fiber.Ctx) error {
	return sendFile(c)(h.uc.ExportAll())
}

// ExportSummary GET /api/export/summary
func (h *ReportHandler) ExportSummary(c *fiber.Ctx) error {
	return sendFile(c)(h.uc.ExportSummary())
}

// sendFile responde el archivo como descarga (Content-Disposition: attachment).
func sendFile(c *fiber.Ctx) func(*dto.FileResponse, error) error {
	return func(file *dto.FileResponse, err error) error {
		if err != nil {
			return respondError(c, err)
		}
		c.Attachment(file.FileName)
		c.Set(fiber.HeaderContentType, file.ContentType)
		return c.Send(file.Content)
	}
}
