package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
)

// Cantidades de movimientos recientes que muestran el dashboard y la vista de cliente.
const (
	DashboardRecentFeed = 5
	CustomerRecentTxs   = 10
)

// Totals totales globales de la libreta.
type Totals struct {
	TotalReceived decimal.Decimal // suma de montos >= 0
	TotalGiven    decimal.Decimal // suma del valor absoluto de montos < 0
	Net           decimal.Decimal // TotalReceived - TotalGiven
}

// FeedEntry movimiento etiquetado con su cliente para el feed combinado.
type FeedEntry struct {
	CustomerID   string
	CustomerName string
	Transaction  entity.Transaction
}

// CustomerBalance saldo de un cliente para el resumen.
type CustomerBalance struct {
	CustomerID string
	Name       string
	Balance    decimal.Decimal
	TxCount    int
}

// BalanceOf suma los montos del cliente; sin movimientos devuelve 0.
func BalanceOf(c entity.Customer) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range c.Transactions {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// ComputeTotals calcula recibido/entregado sobre todos los clientes.
// Un monto cero cuenta como recibido.
func ComputeTotals(customers []entity.Customer) Totals {
	received, given := decimal.Zero, decimal.Zero
	for _, c := range customers {
		for _, t := range c.Transactions {
			if t.IsReceived() {
				received = received.Add(t.Amount)
			} else {
				given = given.Add(t.Amount.Abs())
			}
		}
	}
	return Totals{TotalReceived: received, TotalGiven: given, Net: received.Sub(given)}
}

// MergedFeed aplana los movimientos de todos los clientes, del más reciente al más antiguo
// según CreatedAt. El orden es estable: empates (y fechas desconocidas, que quedan al final)
// conservan el orden relativo de la colección.
func MergedFeed(customers []entity.Customer) []FeedEntry {
	var feed []FeedEntry
	for _, c := range customers {
		for _, t := range c.Transactions {
			feed = append(feed, FeedEntry{CustomerID: c.ID, CustomerName: c.Name, Transaction: t})
		}
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Transaction.CreatedAt.After(feed[j].Transaction.CreatedAt)
	})
	return feed
}

// PerCustomerBalances un saldo por cliente, en el orden de la libreta.
func PerCustomerBalances(customers []entity.Customer) []CustomerBalance {
	out := make([]CustomerBalance, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerBalance{
			CustomerID: c.ID,
			Name:       c.Name,
			Balance:    BalanceOf(c),
			TxCount:    len(c.Transactions),
		})
	}
	return out
}

// Recent devuelve como máximo n entradas del feed (n <= 0: todas).
func Recent(feed []FeedEntry, n int) []FeedEntry {
	if n <= 0 || len(feed) <= n {
		return feed
	}
	return feed[:n]
}

// RecentTransactions los n movimientos más recientes del cliente (n <= 0: todos).
func RecentTransactions(c entity.Customer, n int) []entity.Transaction {
	if n <= 0 || len(c.Transactions) <= n {
		return c.Transactions
	}
	return c.Transactions[:n]
}
