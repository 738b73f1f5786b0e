package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
	"github.com/jhoicas/Khatabook-api/internal/domain/repository"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/snapshot"
)

var (
	_ repository.LedgerStore     = (*SnapshotRepository)(nil)
	_ repository.SnapshotHistory = (*SnapshotRepository)(nil)
	_ snapshot.Blob              = (*SnapshotRepository)(nil)
)

// SnapshotRepository implementa repository.LedgerStore con una fila por namespace en ledger_snapshots.
// Cada escritura agrega además una fila a ledger_snapshot_history en la misma transacción.
type SnapshotRepository struct {
	db        Querier
	tx        *TxRunner
	store     *snapshot.Store
	namespace string
	log       zerolog.Logger
}

// NewSnapshotRepository construye el repositorio sobre el pool.
func NewSnapshotRepository(pool *pgxpool.Pool, namespace string, log zerolog.Logger) *SnapshotRepository {
	r := &SnapshotRepository{db: pool, tx: NewTxRunner(pool), namespace: namespace, log: log}
	r.store = snapshot.NewStore(r, log)
	return r
}

// Load decodifica el payload guardado. Sin fila o con payload corrupto devuelve la libreta vacía.
func (r *SnapshotRepository) Load(ctx context.Context) ([]entity.Customer, error) {
	return r.store.Load(ctx)
}

// Save guarda la colección completa junto con sus totales.
func (r *SnapshotRepository) Save(ctx context.Context, customers []entity.Customer) error {
	return r.store.Save(ctx, customers)
}

// Read payload de la fila; snapshot.ErrNoSnapshot si no existe.
func (r *SnapshotRepository) Read(ctx context.Context) ([]byte, error) {
	query := `SELECT payload::text FROM ledger_snapshots WHERE namespace = $1`
	var payload string
	err := r.db.QueryRow(ctx, query, r.namespace).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, snapshot.ErrNoSnapshot
	}
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("tabla ledger_snapshots inexistente, ejecute las migraciones: %w", err)
		}
		return nil, fmt.Errorf("leer snapshot %s: %w", r.namespace, err)
	}
	return []byte(payload), nil
}

// Write guarda un payload codificado; los totales se recalculan a partir de él.
func (r *SnapshotRepository) Write(ctx context.Context, data []byte) error {
	customers, _, err := snapshot.Decode(data)
	if err != nil {
		return fmt.Errorf("payload inválido: %w", err)
	}
	return r.upsert(ctx, data, customers)
}

// History últimos limit registros del historial, del más reciente al más antiguo.
func (r *SnapshotRepository) History(ctx context.Context, limit int) ([]entity.SnapshotRecord, error) {
	query := `SELECT customers_count, total_received, total_given, saved_at
		FROM ledger_snapshot_history WHERE namespace = $1
		ORDER BY saved_at DESC, id DESC LIMIT $2`
	rows, err := r.db.Query(ctx, query, r.namespace, limit)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("tabla ledger_snapshot_history inexistente, ejecute las migraciones: %w", err)
		}
		return nil, fmt.Errorf("listar historial %s: %w", r.namespace, err)
	}
	defer rows.Close()

	list := make([]entity.SnapshotRecord, 0, limit)
	for rows.Next() {
		var rec entity.SnapshotRecord
		if err := rows.Scan(&rec.CustomersCount, &rec.TotalReceived, &rec.TotalGiven, &rec.SavedAt); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func (r *SnapshotRepository) upsert(ctx context.Context, data []byte, customers []entity.Customer) error {
	totals := ledger.ComputeTotals(customers)
	now := time.Now().UTC()
	err := r.tx.Run(ctx, func(q Querier) error {
		upsert := `INSERT INTO ledger_snapshots (namespace, payload, customers_count, total_received, total_given, updated_at)
			VALUES ($1, $2::jsonb, $3, $4, $5, $6)
			ON CONFLICT (namespace) DO UPDATE SET
				payload = EXCLUDED.payload,
				customers_count = EXCLUDED.customers_count,
				total_received = EXCLUDED.total_received,
				total_given = EXCLUDED.total_given,
				updated_at = EXCLUDED.updated_at`
		if _, err := q.Exec(ctx, upsert,
			r.namespace, string(data), len(customers),
			totals.TotalReceived, totals.TotalGiven, now,
		); err != nil {
			return err
		}
		history := `INSERT INTO ledger_snapshot_history (namespace, customers_count, total_received, total_given, saved_at)
			VALUES ($1, $2, $3, $4, $5)`
		_, err := q.Exec(ctx, history, r.namespace, len(customers), totals.TotalReceived, totals.TotalGiven, now)
		return err
	})
	if err != nil {
		if isUndefinedTable(err) {
			return fmt.Errorf("tabla de snapshots inexistente, ejecute las migraciones: %w", err)
		}
		return fmt.Errorf("guardar snapshot %s: %w", r.namespace, err)
	}
	return nil
}
