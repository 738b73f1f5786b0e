package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
	"github.com/jhoicas/Khatabook-api/internal/application/usecase"
)

// CustomerHandler maneja clientes y sus movimientos.
type CustomerHandler struct {
	uc *usecase.LedgerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.LedgerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCustomers())
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	customer, err := h.uc.CreateCustomer(c.UserContext(), in)
	if !persistenceWarning(c, err) {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID GET /api/customers/:id?recent=true
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetCustomer(c.Params("id"), c.QueryBool("recent", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Update PATCH /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	customer, err := h.uc.UpdateCustomer(c.UserContext(), c.Params("id"), in)
	if !persistenceWarning(c, err) {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.DeleteCustomer(c.UserContext(), c.Params("id"))
	if !persistenceWarning(c, err) {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateTransaction POST /api/customers/:id/transactions
func (h *CustomerHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validateStruct(in); err != nil {
		return respondError(c, err)
	}
	tx, err := h.uc.CreateTransaction(c.UserContext(), c.Params("id"), in)
	if !persistenceWarning(c, err) {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// DeleteTransaction DELETE /api/customers/:id/transactions/:txId
func (h *CustomerHandler) DeleteTransaction(c *fiber.Ctx) error {
	err := h.uc.DeleteTransaction(c.UserContext(), c.Params("id"), c.Params("txId"))
	if !persistenceWarning(c, err) {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
