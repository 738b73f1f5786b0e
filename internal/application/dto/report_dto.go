package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeedRequest query de GET /api/feed. Limit 0 = todos.
type FeedRequest struct {
	Limit int `query:"limit" validate:"min=0,max=1000"`
}

// FeedEntryResponse movimiento del feed global con su cliente.
type FeedEntryResponse struct {
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Transaction  TransactionResponse `json:"transaction"`
}

// FeedResponse respuesta de GET /api/feed.
type FeedResponse struct {
	Items []FeedEntryResponse `json:"items"`
	Total int                 `json:"total"` // movimientos en toda la libreta
}

// TotalsResponse totales globales.
type TotalsResponse struct {
	Currency             string          `json:"currency"`
	TotalReceived        decimal.Decimal `json:"total_received"`
	TotalReceivedDisplay string          `json:"total_received_display"`
	TotalGiven           decimal.Decimal `json:"total_given"`
	TotalGivenDisplay    string          `json:"total_given_display"`
	Net                  decimal.Decimal `json:"net"`
	NetDisplay           string          `json:"net_display"`
}

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Totals     TotalsResponse      `json:"totals"`
	Customers  []CustomerSummary   `json:"customers"`
	RecentFeed []FeedEntryResponse `json:"recent_feed"`
}

// SnapshotHistoryRequest query de GET /api/snapshots. Limit 0 = 20.
type SnapshotHistoryRequest struct {
	Limit int `query:"limit" validate:"min=0,max=500"`
}

// SnapshotRecordResponse resumen de una escritura del snapshot.
type SnapshotRecordResponse struct {
	CustomersCount int            `json:"customers_count"`
	Totals         TotalsResponse `json:"totals"`
	SavedAt        time.Time      `json:"saved_at"`
}

// SnapshotHistoryResponse respuesta de GET /api/snapshots.
type SnapshotHistoryResponse struct {
	Items []SnapshotRecordResponse `json:"items"`
}
