package usecase

import (
	"time"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
	"github.com/jhoicas/Khatabook-api/pkg/money"
	"github.com/jhoicas/Khatabook-api/pkg/phone"
)

// Display formatea entidades de la libreta para respuestas (montos con moneda, teléfonos E.164).
type Display struct {
	money *money.Formatter
	phone *phone.Normalizer
}

// NewDisplay construye el formateador compartido por los casos de uso.
func NewDisplay(m *money.Formatter, p *phone.Normalizer) *Display {
	return &Display{money: m, phone: p}
}

func (d *Display) transaction(t entity.Transaction) dto.TransactionResponse {
	r := dto.TransactionResponse{
		ID:            t.ID,
		Note:          t.Note,
		Label:         t.Label(),
		Amount:        t.Amount,
		AmountDisplay: d.money.Format(t.Amount),
		Received:      t.IsReceived(),
		Date:          t.Date,
	}
	if !t.CreatedAt.IsZero() {
		at := t.CreatedAt.UTC()
		r.CreatedAt = &at
	}
	return r
}

func (d *Display) transactions(txs []entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, d.transaction(t))
	}
	return out
}

func (d *Display) summary(c entity.Customer) dto.CustomerSummary {
	balance := ledger.BalanceOf(c)
	e164, _ := d.phone.E164(c.Phone)
	return dto.CustomerSummary{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		PhoneE164:      e164,
		Note:           c.Note,
		Balance:        balance,
		BalanceDisplay: d.money.Format(balance),
		TxCount:        len(c.Transactions),
	}
}

func (d *Display) detail(c entity.Customer, txs []entity.Transaction) *dto.CustomerDetail {
	return &dto.CustomerDetail{
		CustomerSummary: d.summary(c),
		Transactions:    d.transactions(txs),
	}
}

func (d *Display) feed(entries []ledger.FeedEntry) []dto.FeedEntryResponse {
	out := make([]dto.FeedEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.FeedEntryResponse{
			CustomerID:   e.CustomerID,
			CustomerName: e.CustomerName,
			Transaction:  d.transaction(e.Transaction),
		})
	}
	return out
}

func (d *Display) totals(t ledger.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{
		Currency:             d.money.Code(),
		TotalReceived:        t.TotalReceived,
		TotalReceivedDisplay: d.money.Format(t.TotalReceived),
		TotalGiven:           t.TotalGiven,
		TotalGivenDisplay:    d.money.Format(t.TotalGiven),
		Net:                  t.Net,
		NetDisplay:           d.money.Format(t.Net),
	}
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func (d *Display) snapshotRecords(records []entity.SnapshotRecord) []dto.SnapshotRecordResponse {
	out := make([]dto.SnapshotRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.SnapshotRecordResponse{
			CustomersCount: r.CustomersCount,
			Totals: d.totals(ledger.Totals{
				TotalReceived: r.TotalReceived,
				TotalGiven:    r.TotalGiven,
				Net:           r.TotalReceived.Sub(r.TotalGiven),
			}),
			SavedAt: r.SavedAt,
		})
	}
	return out
}
