package export

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
)

// StatementData datos de un estado de cuenta listos para renderizar.
// Los textos de montos ya vienen formateados para pantalla (2 decimales, moneda).
type StatementData struct {
	Issuer          string // nombre de la app o del negocio
	Customer        entity.Customer
	PhoneDisplay    string // E.164 si el teléfono es válido
	Balance         decimal.Decimal
	BalanceDisplay  string
	ReceivedDisplay string
	GivenDisplay    string
	AmountDisplays  []string // alineado con Customer.Transactions
	GeneratedAt     string
}

// StatementGenerator genera el PDF del estado de cuenta de un cliente.
type StatementGenerator interface {
	GenerateStatementPDF(ctx context.Context, data StatementData) ([]byte, error)
}
