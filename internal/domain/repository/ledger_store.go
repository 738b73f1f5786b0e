package repository

import (
	"context"

	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
)

// LedgerStore define el puerto de persistencia de la libreta: guarda y recupera
// la colección completa de clientes como un único snapshot.
//
//go:generate mockgen -destination=mocks/mock_ledger_store.go -package=mocks -source=ledger_store.go LedgerStore
type LedgerStore interface {
	// Load devuelve un slice vacío si no hay estado previo o si está corrupto.
	Load(ctx context.Context) ([]entity.Customer, error)
	Save(ctx context.Context, customers []entity.Customer) error
}

// SnapshotHistory lo implementan los almacenamientos que registran cada escritura del snapshot.
// Es opcional: se detecta con una aserción de tipo sobre el LedgerStore.
type SnapshotHistory interface {
	// History devuelve como máximo limit registros, del más reciente al más antiguo.
	History(ctx context.Context, limit int) ([]entity.SnapshotRecord, error)
}
