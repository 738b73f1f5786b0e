package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction es un movimiento con signo de un cliente.
// Amount > 0: dinero recibido del cliente; Amount < 0: dinero entregado al cliente.
type Transaction struct {
	ID     string
	Note   string
	Amount decimal.Decimal
	// Date es la fecha legible capturada al crear; nunca se recalcula.
	Date string
	// CreatedAt es la marca canónica usada para ordenar (cero si no se pudo derivar).
	CreatedAt time.Time
}

// IsReceived indica si el movimiento cuenta como recibido (monto >= 0).
func (t Transaction) IsReceived() bool {
	return !t.Amount.IsNegative()
}

// Label devuelve la nota o, si está vacía, "Received"/"Given" según el signo.
func (t Transaction) Label() string {
	if t.Note != "" {
		return t.Note
	}
	if t.IsReceived() {
		return "Received"
	}
	return "Given"
}
