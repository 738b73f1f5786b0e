// Package snapshot serializa la libreta completa como un blob JSON (arreglo de clientes
// con sus movimientos, el mismo formato del valor kb_customers) y la persiste sobre cualquier Blob.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
)

type customerRecord struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Phone        string              `json:"phone"`
	Note         string              `json:"note"`
	Transactions []transactionRecord `json:"transactions"`
}

type transactionRecord struct {
	ID        string          `json:"id"`
	Note      string          `json:"note"`
	Amount    json.RawMessage `json:"amount"`
	Date      string          `json:"date"`
	CreatedAt *time.Time      `json:"createdAt,omitempty"`
}

// Issue problema de un registro que se cargó con un valor de reemplazo.
type Issue struct {
	CustomerID    string
	TransactionID string
	Reason        string
}

func (i Issue) String() string {
	return fmt.Sprintf("cliente %s, movimiento %s: %s", i.CustomerID, i.TransactionID, i.Reason)
}

// localeSpaces espacios que toLocaleString inserta antes de AM/PM según la versión de ICU.
var localeSpaces = strings.NewReplacer("\u202f", " ", "\u00a0", " ")

// legacyDateLayouts formatos de toLocaleString vistos en snapshots sin createdAt.
var legacyDateLayouts = []string{
	time.RFC3339Nano,
	"02/01/2006, 15:04:05",
	"1/2/2006, 3:04:05 PM",
	"2/1/2006, 3:04:05 pm",
	"2/1/2006, 15:04:05",
	"2006-01-02 15:04:05",
}

// Encode serializa los clientes (con sus transacciones) a JSON.
func Encode(customers []entity.Customer) ([]byte, error) {
	records := make([]customerRecord, 0, len(customers))
	for _, c := range customers {
		rec := customerRecord{
			ID:           c.ID,
			Name:         c.Name,
			Phone:        c.Phone,
			Note:         c.Note,
			Transactions: make([]transactionRecord, 0, len(c.Transactions)),
		}
		for _, t := range c.Transactions {
			tr := transactionRecord{
				ID:     t.ID,
				Note:   t.Note,
				Amount: json.RawMessage(t.Amount.String()),
				Date:   t.Date,
			}
			if !t.CreatedAt.IsZero() {
				at := t.CreatedAt.UTC()
				tr.CreatedAt = &at
			}
			rec.Transactions = append(rec.Transactions, tr)
		}
		records = append(records, rec)
	}
	return json.Marshal(records)
}

// Decode interpreta un blob. Solo devuelve error si el JSON no tiene la forma esperada.
// Un monto nulo o no numérico se carga como cero y se informa en issues.
// Los IDs duplicados conservan la primera aparición.
func Decode(data []byte) (customers []entity.Customer, issues []Issue, err error) {
	var records []customerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, fmt.Errorf("decodificar snapshot: %w", err)
	}
	customers = make([]entity.Customer, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.ID == "" || seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		c := entity.Customer{
			ID:           rec.ID,
			Name:         rec.Name,
			Phone:        rec.Phone,
			Note:         rec.Note,
			Transactions: make([]entity.Transaction, 0, len(rec.Transactions)),
		}
		seenTx := make(map[string]bool, len(rec.Transactions))
		for _, tr := range rec.Transactions {
			if tr.ID == "" || seenTx[tr.ID] {
				continue
			}
			seenTx[tr.ID] = true
			amount, ok := parseAmount(tr.Amount)
			if !ok {
				issues = append(issues, Issue{
					CustomerID:    rec.ID,
					TransactionID: tr.ID,
					Reason:        fmt.Sprintf("monto inválido %s, se carga como 0", string(tr.Amount)),
				})
			}
			t := entity.Transaction{ID: tr.ID, Note: tr.Note, Amount: amount, Date: tr.Date}
			if tr.CreatedAt != nil {
				t.CreatedAt = *tr.CreatedAt
			} else {
				t.CreatedAt = parseLegacyDate(tr.Date)
			}
			c.Transactions = append(c.Transactions, t)
		}
		customers = append(customers, c)
	}
	return customers, issues, nil
}

// parseAmount acepta un número JSON o un texto numérico. null, vacío u otro tipo no son válidos.
func parseAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, false
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, false
		}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseLegacyDate intenta derivar la marca canónica del texto legible; cero si no se puede.
func parseLegacyDate(s string) time.Time {
	s = localeSpaces.Replace(strings.TrimSpace(s))
	for _, layout := range legacyDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
