package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/domain"
	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
)

// LedgerUseCase casos de uso de clientes y movimientos sobre la libreta.
// Los errores de persistencia se devuelven junto con la respuesta: la mutación ya está aplicada.
type LedgerUseCase struct {
	ledger  *ledger.Ledger
	display *Display
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(l *ledger.Ledger, display *Display) *LedgerUseCase {
	return &LedgerUseCase{ledger: l, display: display}
}

// ListCustomers clientes en el orden de la libreta (más reciente primero) con su saldo.
func (uc *LedgerUseCase) ListCustomers() *dto.CustomerListResponse {
	customers := uc.ledger.ListCustomers()
	items := make([]dto.CustomerSummary, 0, len(customers))
	for _, c := range customers {
		items = append(items, uc.display.summary(c))
	}
	return &dto.CustomerListResponse{Items: items, Total: len(items)}
}

// GetCustomer detalle del cliente. recent limita a los últimos movimientos de la vista de cliente.
func (uc *LedgerUseCase) GetCustomer(id string, recent bool) (*dto.CustomerDetail, error) {
	c, ok := uc.ledger.GetCustomer(id)
	if !ok {
		return nil, &domain.NotFoundError{Entity: "cliente", ID: id}
	}
	txs := c.Transactions
	if recent {
		txs = ledger.RecentTransactions(c, ledger.CustomerRecentTxs)
	}
	return uc.display.detail(c, txs), nil
}

// CreateCustomer agrega un cliente.
func (uc *LedgerUseCase) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerDetail, error) {
	c, err := uc.ledger.AddCustomer(ctx, in.Name, in.Phone)
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		return nil, err
	}
	return uc.display.detail(c, c.Transactions), err
}

// UpdateCustomer aplica el parche. La libreta ignora ids inexistentes; aquí se informan como NotFound.
func (uc *LedgerUseCase) UpdateCustomer(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerDetail, error) {
	patch := entity.CustomerPatch{Name: in.Name, Phone: in.Phone, Note: in.Note}
	err := uc.ledger.UpdateCustomer(ctx, id, patch)
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		return nil, err
	}
	c, ok := uc.ledger.GetCustomer(id)
	if !ok {
		return nil, &domain.NotFoundError{Entity: "cliente", ID: id}
	}
	return uc.display.detail(c, c.Transactions), err
}

// DeleteCustomer elimina el cliente con sus movimientos. Idempotente.
func (uc *LedgerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	return uc.ledger.DeleteCustomer(ctx, id)
}

// CreateTransaction registra un movimiento del cliente.
func (uc *LedgerUseCase) CreateTransaction(ctx context.Context, customerID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	t, err := uc.ledger.AddTransaction(ctx, customerID, in.Note, string(in.Amount), timeOrZero(in.At))
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		return nil, err
	}
	r := uc.display.transaction(t)
	return &r, err
}

// DeleteTransaction elimina el movimiento si existe.
func (uc *LedgerUseCase) DeleteTransaction(ctx context.Context, customerID, txID string) error {
	return uc.ledger.DeleteTransaction(ctx, customerID, txID)
}
