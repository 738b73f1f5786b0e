package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Phone string `json:"phone" validate:"max=40"`
}

// UpdateCustomerRequest body para PATCH /api/customers/:id (campos opcionales).
type UpdateCustomerRequest struct {
	Name  *string `json:"name" validate:"omitempty,max=120"`
	Phone *string `json:"phone" validate:"omitempty,max=40"`
	Note  *string `json:"note" validate:"omitempty,max=500"`
}

// CreateTransactionRequest body para POST /api/customers/:id/transactions.
// Amount positivo = recibido, negativo = entregado.
type CreateTransactionRequest struct {
	Note   string      `json:"note" validate:"required,max=200"`
	Amount AmountInput `json:"amount" validate:"required"`
	At     *time.Time  `json:"at,omitempty"` // opcional; por defecto ahora
}

// AmountInput acepta el monto como número JSON (500) o como texto ("-200.50").
// La validación numérica la hace el dominio.
type AmountInput string

// UnmarshalJSON implementa json.Unmarshaler.
func (a *AmountInput) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*a = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
	default:
		*a = AmountInput(raw)
	}
	return nil
}

// TransactionResponse movimiento con su monto formateado.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Note          string          `json:"note"`
	Label         string          `json:"label"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
	Received      bool            `json:"received"`
	Date          string          `json:"date"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
}

// CustomerSummary cliente con saldo, sin movimientos.
type CustomerSummary struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	PhoneE164      string          `json:"phone_e164,omitempty"`
	Note           string          `json:"note"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceDisplay string          `json:"balance_display"`
	TxCount        int             `json:"tx_count"`
}

// CustomerDetail cliente con sus movimientos (todos o los recientes).
type CustomerDetail struct {
	CustomerSummary
	Transactions []TransactionResponse `json:"transactions"`
}

// CustomerListResponse respuesta de GET /api/customers.
type CustomerListResponse struct {
	Items []CustomerSummary `json:"items"`
	Total int               `json:"total"`
}
