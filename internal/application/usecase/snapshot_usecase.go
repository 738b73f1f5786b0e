package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
	"github.com/jhoicas/Khatabook-api/internal/domain"
	"github.com/jhoicas/Khatabook-api/internal/domain/repository"
)

const defaultHistoryLimit = 20

// SnapshotUseCase historial de escrituras del snapshot (solo con almacenamiento postgres).
type SnapshotUseCase struct {
	history repository.SnapshotHistory
	display *Display
}

// NewSnapshotUseCase construye el caso de uso. history nil = el almacenamiento no guarda historial.
func NewSnapshotUseCase(history repository.SnapshotHistory, display *Display) *SnapshotUseCase {
	return &SnapshotUseCase{history: history, display: display}
}

// History últimas escrituras con sus totales, de la más reciente a la más antigua.
func (uc *SnapshotUseCase) History(ctx context.Context, in dto.SnapshotHistoryRequest) (*dto.SnapshotHistoryResponse, error) {
	if uc.history == nil {
		return nil, fmt.Errorf("historial de snapshots: requiere LEDGER_STORE=postgres: %w", domain.ErrUnavailable)
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := uc.history.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &dto.SnapshotHistoryResponse{Items: uc.display.snapshotRecords(records)}, nil
}
