package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotRecord resumen de una escritura del snapshot (historial).
type SnapshotRecord struct {
	CustomersCount int
	TotalReceived  decimal.Decimal
	TotalGiven     decimal.Decimal
	SavedAt        time.Time
}
