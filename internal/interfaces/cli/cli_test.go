package cli_test

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Khatabook-api/internal/application/export"
	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/application/usecase"
	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
	"github.com/jhoicas/Khatabook-api/internal/domain/repository"
	"github.com/jhoicas/Khatabook-api/internal/domain/repository/mocks"
	"github.com/jhoicas/Khatabook-api/internal/interfaces/cli"
	"github.com/jhoicas/Khatabook-api/pkg/money"
	"github.com/jhoicas/Khatabook-api/pkg/phone"
)

type fakeStatements struct{}

func (fakeStatements) GenerateStatementPDF(context.Context, export.StatementData) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), nil
}

type harness struct {
	app      *cli.App
	out, err *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	n := 0
	l := ledger.New(nil, ledger.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}))
	m, err := money.NewFormatter("INR")
	require.NoError(t, err)
	display := usecase.NewDisplay(m, phone.NewNormalizer("IN"))

	h := &harness{out: &bytes.Buffer{}, err: &bytes.Buffer{}}
	h.app = &cli.App{
		LedgerUC: usecase.NewLedgerUseCase(l, display),
		ReportUC: usecase.NewReportUseCase(l, display, fakeStatements{}, usecase.ReportConfig{}),
		Out:      h.out,
		Err:      h.err,
	}
	return h
}

func (h *harness) run(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	h.out.Reset()
	h.err.Reset()
	fs := flag.NewFlagSet("khata", flag.ContinueOnError)
	cmdr := subcommands.NewCommander(fs, "khata")
	cli.Register(cmdr, h.app)
	require.NoError(t, fs.Parse(args))
	return cmdr.Execute(context.Background())
}

func TestCLI_CustomerAndTransactions(t *testing.T) {
	h := newHarness(t)

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add-customer", "-name", "Asha", "-phone", "9999"))
	assert.Contains(t, h.out.String(), "Cliente creado: Asha (id1)")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add-tx", "-customer", "id1", "-note", "Loan", "-amount", "500", "-at", "2026-10-17T09:00:00Z"))
	assert.Contains(t, h.out.String(), "₹500.00")
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add-tx", "-customer", "id1", "-note", "Repay", "-amount", "-200.50", "-at", "2026-10-17T10:00:00Z"))

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "customers"))
	assert.Contains(t, h.out.String(), "₹299.50")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "update-customer", "-id", "id1", "-note", "tienda"))
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "customers", "-json"))
	assert.Contains(t, h.out.String(), `"note": "tienda"`)
	assert.Contains(t, h.out.String(), `"phone": "9999"`, "los flags ausentes no se modifican")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "delete-tx", "-customer", "id1", "-tx", "id2"))
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "feed"))
	assert.Contains(t, h.out.String(), "Repay")
	assert.NotContains(t, h.out.String(), "Loan")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "delete-customer", "-id", "id1"))
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "customers"))
	assert.Contains(t, h.out.String(), "No hay clientes.")
}

func TestCLI_Errors(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "add-customer", "-name", "  "))
	assert.Contains(t, h.err.String(), "validación")

	assert.Equal(t, subcommands.ExitFailure, h.run(t, "add-tx", "-customer", "nadie", "-note", "x", "-amount", "1"))
	assert.Contains(t, h.err.String(), "no encontrado")

	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "add-tx", "-customer", "nadie", "-note", "x", "-amount", "1", "-at", "ayer"))
	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "export", "-kind", "pdf"))
	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "delete-tx", "-customer", "id1"))
}

func TestCLI_DashboardAndExports(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add-customer", "-name", "Asha Rao"))
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add-tx", "-customer", "id1", "-note", "Loan", "-amount", "500"))

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "dashboard"))
	assert.Contains(t, h.out.String(), "Recibido:  ₹500.00")
	assert.Contains(t, h.out.String(), "Últimos movimientos")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "export", "-kind", "customer", "-id", "id1", "-o", dir))
	data, err := os.ReadFile(filepath.Join(dir, "Asha_Rao_transactions.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id2","Loan","500"`)

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "export", "-kind", "summary", "-o", dir))
	_, err = os.Stat(filepath.Join(dir, export.SummaryFileName))
	assert.NoError(t, err)

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "statement", "-id", "id1", "-o", dir))
	_, err = os.Stat(filepath.Join(dir, "Asha_Rao_statement.pdf"))
	assert.NoError(t, err)
}

func withHistory(t *testing.T, h *harness, history repository.SnapshotHistory) {
	t.Helper()
	m, err := money.NewFormatter("INR")
	require.NoError(t, err)
	h.app.SnapshotUC = usecase.NewSnapshotUseCase(history, usecase.NewDisplay(m, phone.NewNormalizer("IN")))
}

func TestCLI_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mocks.NewMockSnapshotHistory(ctrl)
	history.EXPECT().History(gomock.Any(), 20).Return([]entity.SnapshotRecord{{
		CustomersCount: 3,
		TotalReceived:  decimal.RequireFromString("1000"),
		TotalGiven:     decimal.RequireFromString("250"),
		SavedAt:        time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}}, nil).Times(2)

	h := newHarness(t)
	withHistory(t, h, history)

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "history"))
	assert.Contains(t, h.out.String(), "GUARDADO")
	assert.Contains(t, h.out.String(), "₹750.00")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "history", "-json"))
	assert.Contains(t, h.out.String(), `"customers_count": 3`)

	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "history", "-limit", "-1"))
}

func TestCLI_HistoryUnavailable(t *testing.T) {
	h := newHarness(t)
	withHistory(t, h, nil)

	assert.Equal(t, subcommands.ExitFailure, h.run(t, "history"))
	assert.Contains(t, h.err.String(), "LEDGER_STORE=postgres")

	// sin caso de uso el comando no se registra
	h = newHarness(t)
	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "history"))
}
