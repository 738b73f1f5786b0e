package export_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Khatabook-api/internal/application/export"
	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func TestExportCustomer_AshaScenario(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(nil,
		ledger.WithIDGenerator(seqIDs()),
		ledger.WithDateLayout("02/01/2006, 15:04:05"),
	)
	c, err := l.AddCustomer(ctx, "Asha", "9999")
	require.NoError(t, err)
	_, err = l.AddTransaction(ctx, c.ID, "Loan", "500", time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = l.AddTransaction(ctx, c.ID, "Repaid", "-200", time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	got, _ := l.GetCustomer(c.ID)
	out := export.ExportCustomer(got)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3, "1 encabezado + 2 filas")
	assert.Equal(t, `"Tx ID","Note","Amount","Date"`, lines[0])
	assert.Equal(t, `"t3","Repaid","-200","02/10/2026, 09:00:00"`, lines[1])
	assert.Equal(t, `"t2","Loan","500","01/10/2026, 09:00:00"`, lines[2])
}

func TestExportCustomer_EscapesQuotes(t *testing.T) {
	c := entity.Customer{Transactions: []entity.Transaction{{
		ID: "1", Note: `He said "hi", ok`, Amount: decimal.RequireFromString("12.50"), Date: "d",
	}}}
	out := export.ExportCustomer(c)
	assert.Contains(t, out, `"He said ""hi"", ok"`)
	assert.True(t, strings.HasSuffix(out, `"1","He said ""hi"", ok","12.5","d"`), "sin salto de línea final")
}

func TestExportCustomer_Empty(t *testing.T) {
	assert.Equal(t, `"Tx ID","Note","Amount","Date"`, export.ExportCustomer(entity.Customer{Name: "x"}))
}

func TestExportAll_CustomerMajorOrder(t *testing.T) {
	customers := []entity.Customer{
		{Name: `Ravi "R"`, Transactions: []entity.Transaction{
			{ID: "r2", Note: "Tea", Amount: decimal.NewFromInt(-20), Date: "d2"},
			{ID: "r1", Note: "", Amount: decimal.NewFromInt(50), Date: "d1"},
		}},
		{Name: "Empty"},
		{Name: "Asha", Transactions: []entity.Transaction{
			{ID: "a1", Note: "Loan", Amount: decimal.NewFromInt(500), Date: "d0"},
		}},
	}
	want := strings.Join([]string{
		`"Customer","Tx ID","Note","Amount","Date"`,
		`"Ravi ""R""","r2","Tea","-20","d2"`,
		`"Ravi ""R""","r1","","50","d1"`,
		`"Asha","a1","Loan","500","d0"`,
	}, "\n")
	assert.Equal(t, want, export.ExportAll(customers))
}

func TestExportSummary(t *testing.T) {
	balances := []ledger.CustomerBalance{
		{Name: "Asha", Balance: decimal.NewFromInt(300)},
		{Name: "Ravi, Jr.", Balance: decimal.RequireFromString("-0.1")},
	}
	want := "\"Customer\",\"Balance\"\n\"Asha\",\"300\"\n\"Ravi, Jr.\",\"-0.1\""
	assert.Equal(t, want, export.ExportSummary(balances))
}

func TestExportAmountsAreNotFixedPoint(t *testing.T) {
	c := entity.Customer{Transactions: []entity.Transaction{
		{ID: "1", Amount: decimal.RequireFromString("1234.5600")},
		{ID: "2", Amount: decimal.RequireFromString("0.333")},
	}}
	out := export.ExportCustomer(c)
	assert.Contains(t, out, `"1234.56"`)
	assert.Contains(t, out, `"0.333"`)
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "Asha_transactions.csv", export.CustomerFileName("Asha"))
	assert.Equal(t, "Asha_K_Rao_transactions.csv", export.CustomerFileName("Asha  K\tRao"))
	assert.Equal(t, "Asha_K_statement.pdf", export.StatementFileName("Asha K"))
	assert.Equal(t, "khatabook_all_transactions.csv", export.AllTransactionsFileName)
	assert.Equal(t, "khatabook_summary.csv", export.SummaryFileName)
}

func TestEncode(t *testing.T) {
	text := `"Customer","Balance"` + "\n" + `"José ₹","5"`

	utf8, err := export.Encode(text, "")
	require.NoError(t, err)
	assert.Equal(t, text, string(utf8))

	cp, err := export.Encode(text, "windows-1252")
	require.NoError(t, err)
	assert.Contains(t, string(cp), "Jos\xe9")
	assert.NotContains(t, string(cp), "₹")

	latin, err := export.Encode("José", "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("Jos\xe9"), latin)

	_, err = export.Encode(text, "ebcdic")
	assert.Error(t, err)

	assert.Equal(t, "text/csv; charset=utf-8", export.ContentType(""))
	assert.Equal(t, "text/csv; charset=windows-1252", export.ContentType("Windows-1252"))
}
