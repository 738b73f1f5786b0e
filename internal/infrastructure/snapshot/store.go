package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
	"github.com/jhoicas/Khatabook-api/internal/domain/repository"
)

// ErrNoSnapshot lo devuelve Blob.Read cuando aún no existe estado guardado.
var ErrNoSnapshot = errors.New("snapshot inexistente")

// Blob almacenamiento opaco de un único valor (archivo, clave redis, fila, objeto).
type Blob interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

var _ repository.LedgerStore = (*Store)(nil)

// Store implementa repository.LedgerStore sobre un Blob con el códec JSON.
type Store struct {
	blob Blob
	log  zerolog.Logger
}

// NewStore construye el adaptador.
func NewStore(blob Blob, log zerolog.Logger) *Store {
	return &Store{blob: blob, log: log}
}

// Load devuelve el estado guardado. Sin snapshot o con JSON corrupto devuelve vacío:
// un blob dañado no debe impedir el arranque. Un registro con monto inválido se carga
// como cero con un warning. Los errores de acceso sí se propagan.
func (s *Store) Load(ctx context.Context) ([]entity.Customer, error) {
	data, err := s.blob.Read(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		return []entity.Customer{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	if len(data) == 0 {
		return []entity.Customer{}, nil
	}
	customers, issues, err := Decode(data)
	if err != nil {
		s.log.Warn().Err(err).Int("bytes", len(data)).Msg("snapshot corrupto, se inicia con la libreta vacía")
		return []entity.Customer{}, nil
	}
	for _, issue := range issues {
		s.log.Warn().
			Str("customer_id", issue.CustomerID).
			Str("tx_id", issue.TransactionID).
			Msg(issue.Reason)
	}
	return customers, nil
}

// Save serializa y escribe la colección completa.
func (s *Store) Save(ctx context.Context, customers []entity.Customer) error {
	data, err := Encode(customers)
	if err != nil {
		return fmt.Errorf("codificar snapshot: %w", err)
	}
	if err := s.blob.Write(ctx, data); err != nil {
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	return nil
}
