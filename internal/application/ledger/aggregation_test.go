package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
)

func tx(id, amount string, at time.Time) entity.Transaction {
	return entity.Transaction{ID: id, Note: id, Amount: decimal.RequireFromString(amount), CreatedAt: at}
}

func TestBalanceOf_Empty(t *testing.T) {
	assert.True(t, ledger.BalanceOf(entity.Customer{}).IsZero())
}

func TestComputeTotals(t *testing.T) {
	customers := []entity.Customer{
		{Transactions: []entity.Transaction{tx("a", "100", time.Time{})}},
		{Transactions: []entity.Transaction{tx("b", "-40", time.Time{})}},
	}
	got := ledger.ComputeTotals(customers)
	assert.Equal(t, "100", got.TotalReceived.String())
	assert.Equal(t, "40", got.TotalGiven.String())
	assert.Equal(t, "60", got.Net.String())
}

func TestComputeTotals_ZeroCountsAsReceived(t *testing.T) {
	customers := []entity.Customer{
		{Transactions: []entity.Transaction{tx("a", "0", time.Time{}), tx("b", "-0.5", time.Time{}), tx("c", "2.5", time.Time{})}},
	}
	got := ledger.ComputeTotals(customers)
	assert.Equal(t, "2.5", got.TotalReceived.String())
	assert.Equal(t, "0.5", got.TotalGiven.String())

	empty := ledger.ComputeTotals(nil)
	assert.True(t, empty.TotalReceived.IsZero())
	assert.True(t, empty.TotalGiven.IsZero())
	assert.True(t, empty.Net.IsZero())
}

func TestMergedFeed_SortsByCreatedAtDescending(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	customers := []entity.Customer{
		{ID: "c1", Name: "Asha", Transactions: []entity.Transaction{
			tx("a2", "1", t0.Add(2*time.Hour)),
			tx("a1", "1", t0),
		}},
		{ID: "c2", Name: "Ravi", Transactions: []entity.Transaction{
			tx("r2", "1", t0.Add(3*time.Hour)),
			tx("r1", "1", t0.Add(time.Hour)),
		}},
	}

	feed := ledger.MergedFeed(customers)
	require.Len(t, feed, 4)
	ids := make([]string, 0, len(feed))
	for _, e := range feed {
		ids = append(ids, e.Transaction.ID)
	}
	assert.Equal(t, []string{"r2", "a2", "r1", "a1"}, ids)
	assert.Equal(t, "Ravi", feed[0].CustomerName)
	assert.Equal(t, "c2", feed[0].CustomerID)
}

func TestMergedFeed_StableTiesAndUnknownDatesLast(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	customers := []entity.Customer{
		{ID: "c1", Name: "Asha", Transactions: []entity.Transaction{
			tx("legacy-a", "1", time.Time{}),
			tx("tie-a", "1", t0),
		}},
		{ID: "c2", Name: "Ravi", Transactions: []entity.Transaction{
			tx("tie-r", "1", t0),
			tx("legacy-r", "1", time.Time{}),
		}},
	}

	feed := ledger.MergedFeed(customers)
	ids := make([]string, 0, len(feed))
	for _, e := range feed {
		ids = append(ids, e.Transaction.ID)
	}
	assert.Equal(t, []string{"tie-a", "tie-r", "legacy-a", "legacy-r"}, ids)
}

func TestPerCustomerBalances(t *testing.T) {
	customers := []entity.Customer{
		{ID: "c1", Name: "Asha", Transactions: []entity.Transaction{tx("a", "500", time.Time{}), tx("b", "-200", time.Time{})}},
		{ID: "c2", Name: "Ravi"},
	}
	got := ledger.PerCustomerBalances(customers)
	require.Len(t, got, 2)
	assert.Equal(t, "Asha", got[0].Name)
	assert.Equal(t, "300", got[0].Balance.String())
	assert.Equal(t, 2, got[0].TxCount)
	assert.Equal(t, "Ravi", got[1].Name)
	assert.True(t, got[1].Balance.IsZero())
}

func TestRecent(t *testing.T) {
	feed := make([]ledger.FeedEntry, 7)
	assert.Len(t, ledger.Recent(feed, ledger.DashboardRecentFeed), 5)
	assert.Len(t, ledger.Recent(feed, 0), 7)
	assert.Len(t, ledger.Recent(feed[:3], 5), 3)

	c := entity.Customer{Transactions: make([]entity.Transaction, 12)}
	assert.Len(t, ledger.RecentTransactions(c, ledger.CustomerRecentTxs), 10)
	assert.Len(t, ledger.RecentTransactions(c, -1), 12)
}
