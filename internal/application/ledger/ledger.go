// Package ledger contiene el motor de estado de la libreta: la colección de clientes
// en memoria (única fuente de verdad), sus mutaciones con write-through al
// repositorio de persistencia y las agregaciones derivadas (saldos, totales, feed).
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Khatabook-api/internal/domain"
	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
	"github.com/jhoicas/Khatabook-api/internal/domain/repository"
)

// DefaultDateLayout formato legible de la fecha de cada movimiento (estilo toLocaleString en-IN).
const DefaultDateLayout = "02/01/2006, 15:04:05"

// Ledger es el dueño exclusivo de la colección de clientes. Todas las mutaciones
// se serializan con mu y escriben el snapshot completo antes de retornar.
type Ledger struct {
	mu        sync.Mutex
	customers []entity.Customer

	store      repository.LedgerStore
	newID      func() string
	now        func() time.Time
	dateLayout string
	log        zerolog.Logger
	observer   Observer
}

// Option configura un Ledger.
type Option func(*Ledger)

// WithIDGenerator reemplaza la generación de IDs (por defecto UUID v4).
func WithIDGenerator(fn func() string) Option { return func(l *Ledger) { l.newID = fn } }

// WithClock reemplaza el reloj usado cuando AddTransaction no recibe fecha.
func WithClock(fn func() time.Time) Option { return func(l *Ledger) { l.now = fn } }

// WithDateLayout define el formato legible de Transaction.Date.
func WithDateLayout(layout string) Option {
	return func(l *Ledger) {
		if layout != "" {
			l.dateLayout = layout
		}
	}
}

// WithLogger inyecta el logger (por defecto zerolog.Nop()).
func WithLogger(log zerolog.Logger) Option { return func(l *Ledger) { l.log = log } }

// WithObserver inyecta el observador de métricas.
func WithObserver(o Observer) Option {
	return func(l *Ledger) {
		if o != nil {
			l.observer = o
		}
	}
}

// New construye una libreta vacía. store puede ser nil (solo memoria).
func New(store repository.LedgerStore, opts ...Option) *Ledger {
	l := &Ledger{
		store:      store,
		newID:      func() string { return uuid.New().String() },
		now:        time.Now,
		dateLayout: DefaultDateLayout,
		log:        zerolog.Nop(),
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open construye la libreta y carga el estado inicial desde store.
func Open(ctx context.Context, store repository.LedgerStore, opts ...Option) (*Ledger, error) {
	l := New(store, opts...)
	if store == nil {
		return l, nil
	}
	customers, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar libreta: %w", err)
	}
	l.customers = make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		l.customers = append(l.customers, c.Clone())
	}
	l.observer.CustomersCount(len(l.customers))
	l.log.Info().Int("customers", len(l.customers)).Msg("libreta cargada")
	return l, nil
}

// ListCustomers devuelve una copia de la colección en el orden actual.
func (l *Ledger) ListCustomers() []entity.Customer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// GetCustomer devuelve una copia del cliente indicado.
func (l *Ledger) GetCustomer(id string) (entity.Customer, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexLocked(id)
	if i < 0 {
		return entity.Customer{}, false
	}
	return l.customers[i].Clone(), true
}

// AddCustomer valida el nombre y agrega el cliente al inicio de la colección.
// Si solo falla la persistencia, devuelve el cliente creado junto con un *domain.PersistenceError.
func (l *Ledger) AddCustomer(ctx context.Context, name, phone string) (entity.Customer, error) {
	name, err := entity.ValidateCustomerName(name)
	if err != nil {
		return entity.Customer{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	c := entity.Customer{
		ID:           l.uniqueIDLocked(func(id string) bool { return l.indexLocked(id) >= 0 }),
		Name:         name,
		Phone:        phone,
		Transactions: []entity.Transaction{},
	}
	l.customers = append([]entity.Customer{c}, l.customers...)
	return c.Clone(), l.persistLocked(ctx, OpAddCustomer)
}

// UpdateCustomer fusiona patch en el cliente id. Un id inexistente es un no-op silencioso:
// los llamadores (UI, CLI) disparan la edición sin esperar confirmación.
func (l *Ledger) UpdateCustomer(ctx context.Context, id string, patch entity.CustomerPatch) error {
	var name string
	if patch.Name != nil {
		n, err := entity.ValidateCustomerName(*patch.Name)
		if err != nil {
			return err
		}
		name = n
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(id)
	if i < 0 {
		return nil
	}
	c := &l.customers[i]
	if patch.Name != nil {
		c.Name = name
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Note != nil {
		c.Note = *patch.Note
	}
	return l.persistLocked(ctx, OpUpdateCustomer)
}

// DeleteCustomer elimina el cliente y todas sus transacciones. Idempotente.
func (l *Ledger) DeleteCustomer(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(id)
	if i < 0 {
		return nil
	}
	l.customers = append(l.customers[:i:i], l.customers[i+1:]...)
	return l.persistLocked(ctx, OpDeleteCustomer)
}

// AddTransaction valida nota y monto, y antepone el movimiento a la secuencia del cliente.
// at cero significa "ahora". Devuelve *domain.NotFoundError si el cliente no existe.
func (l *Ledger) AddTransaction(ctx context.Context, customerID, note, amount string, at time.Time) (entity.Transaction, error) {
	note, err := entity.ValidateNote(note)
	if err != nil {
		return entity.Transaction{}, err
	}
	value, err := entity.ParseAmount(amount)
	if err != nil {
		return entity.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(customerID)
	if i < 0 {
		return entity.Transaction{}, &domain.NotFoundError{Entity: "cliente", ID: customerID}
	}
	if at.IsZero() {
		at = l.now()
	}
	c := &l.customers[i]
	tx := entity.Transaction{
		ID:        l.uniqueIDLocked(func(id string) bool { return c.FindTransaction(id) >= 0 }),
		Note:      note,
		Amount:    value,
		Date:      at.Format(l.dateLayout),
		CreatedAt: at,
	}
	txs := make([]entity.Transaction, 0, len(c.Transactions)+1)
	txs = append(txs, tx)
	c.Transactions = append(txs, c.Transactions...)
	return tx, l.persistLocked(ctx, OpAddTransaction)
}

// DeleteTransaction elimina el movimiento si existe; no-op en otro caso.
func (l *Ledger) DeleteTransaction(ctx context.Context, customerID, txID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(customerID)
	if i < 0 {
		return nil
	}
	c := &l.customers[i]
	j := c.FindTransaction(txID)
	if j < 0 {
		return nil
	}
	c.Transactions = append(c.Transactions[:j:j], c.Transactions[j+1:]...)
	return l.persistLocked(ctx, OpDeleteTransaction)
}

func (l *Ledger) indexLocked(id string) int {
	for i, c := range l.customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// uniqueIDLocked pide IDs al generador hasta obtener uno libre.
func (l *Ledger) uniqueIDLocked(taken func(string) bool) string {
	for {
		id := l.newID()
		if !taken(id) {
			return id
		}
	}
}

func (l *Ledger) snapshotLocked() []entity.Customer {
	out := make([]entity.Customer, 0, len(l.customers))
	for _, c := range l.customers {
		out = append(out, c.Clone())
	}
	return out
}

// persistLocked escribe el snapshot completo. Un fallo no revierte la mutación.
func (l *Ledger) persistLocked(ctx context.Context, op string) error {
	l.observer.MutationApplied(op)
	l.observer.CustomersCount(len(l.customers))
	if l.store == nil {
		return nil
	}
	if err := l.store.Save(ctx, l.snapshotLocked()); err != nil {
		l.observer.PersistFailed(op)
		l.log.Error().Err(err).Str("op", op).Msg("no se pudo persistir la libreta, se conserva el estado en memoria")
		return &domain.PersistenceError{Op: op, Err: err}
	}
	l.log.Debug().Str("op", op).Int("customers", len(l.customers)).Msg("libreta persistida")
	return nil
}
