package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
	"github.com/jhoicas/Khatabook-api/internal/application/export"
	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/domain"
	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
)

// ReportConfig opciones de exportación y reportes.
type ReportConfig struct {
	Issuer     string // nombre mostrado en el estado de cuenta
	Charset    string // charset de los CSV
	DateLayout string // fecha de generación del estado de cuenta
}

// ReportUseCase dashboard, feed y exportaciones (CSV y PDF). Solo lectura.
type ReportUseCase struct {
	ledger     *ledger.Ledger
	display    *Display
	statements export.StatementGenerator
	cfg        ReportConfig
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso. statements puede ser nil (sin PDF).
func NewReportUseCase(l *ledger.Ledger, display *Display, statements export.StatementGenerator, cfg ReportConfig) *ReportUseCase {
	if cfg.DateLayout == "" {
		cfg.DateLayout = ledger.DefaultDateLayout
	}
	return &ReportUseCase{ledger: l, display: display, statements: statements, cfg: cfg, now: time.Now}
}

// Dashboard totales, saldo por cliente y los últimos movimientos de toda la libreta.
func (uc *ReportUseCase) Dashboard() *dto.DashboardResponse {
	customers := uc.ledger.ListCustomers()
	summaries := make([]dto.CustomerSummary, 0, len(customers))
	for _, c := range customers {
		summaries = append(summaries, uc.display.summary(c))
	}
	return &dto.DashboardResponse{
		Totals:     uc.display.totals(ledger.ComputeTotals(customers)),
		Customers:  summaries,
		RecentFeed: uc.display.feed(ledger.Recent(ledger.MergedFeed(customers), ledger.DashboardRecentFeed)),
	}
}

// Feed movimientos de todos los clientes, del más reciente al más antiguo. limit 0 = todos.
func (uc *ReportUseCase) Feed(in dto.FeedRequest) *dto.FeedResponse {
	feed := ledger.MergedFeed(uc.ledger.ListCustomers())
	return &dto.FeedResponse{
		Items: uc.display.feed(ledger.Recent(feed, in.Limit)),
		Total: len(feed),
	}
}

// ExportCustomer CSV con los movimientos del cliente.
func (uc *ReportUseCase) ExportCustomer(id string) (*dto.FileResponse, error) {
	c, ok := uc.ledger.GetCustomer(id)
	if !ok {
		return nil, &domain.NotFoundError{Entity: "cliente", ID: id}
	}
	return uc.csvFile(export.CustomerFileName(c.Name), export.ExportCustomer(c))
}

// ExportAll CSV con los movimientos de todos los clientes.
func (uc *ReportUseCase) ExportAll() (*dto.FileResponse, error) {
	return uc.csvFile(export.AllTransactionsFileName, export.ExportAll(uc.ledger.ListCustomers()))
}

// ExportSummary CSV con el saldo de cada cliente.
func (uc *ReportUseCase) ExportSummary() (*dto.FileResponse, error) {
	balances := ledger.PerCustomerBalances(uc.ledger.ListCustomers())
	return uc.csvFile(export.SummaryFileName, export.ExportSummary(balances))
}

// Statement estado de cuenta del cliente en PDF.
func (uc *ReportUseCase) Statement(ctx context.Context, id string) (*dto.FileResponse, error) {
	if uc.statements == nil {
		return nil, fmt.Errorf("generador de estados de cuenta no configurado")
	}
	c, ok := uc.ledger.GetCustomer(id)
	if !ok {
		return nil, &domain.NotFoundError{Entity: "cliente", ID: id}
	}

	amounts := make([]string, 0, len(c.Transactions))
	for _, t := range c.Transactions {
		amounts = append(amounts, uc.display.money.Format(t.Amount))
	}
	totals := ledger.ComputeTotals([]entity.Customer{c})
	balance := ledger.BalanceOf(c)

	data := export.StatementData{
		Issuer:          uc.cfg.Issuer,
		Customer:        c,
		PhoneDisplay:    uc.display.phone.Display(c.Phone),
		Balance:         balance,
		BalanceDisplay:  uc.display.money.Format(balance),
		ReceivedDisplay: uc.display.money.Format(totals.TotalReceived),
		GivenDisplay:    uc.display.money.Format(totals.TotalGiven),
		AmountDisplays:  amounts,
		GeneratedAt:     uc.now().Format(uc.cfg.DateLayout),
	}
	content, err := uc.statements.GenerateStatementPDF(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("generar estado de cuenta: %w", err)
	}
	return &dto.FileResponse{
		FileName:    export.StatementFileName(c.Name),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

func (uc *ReportUseCase) csvFile(name, text string) (*dto.FileResponse, error) {
	content, err := export.Encode(text, uc.cfg.Charset)
	if err != nil {
		return nil, err
	}
	return &dto.FileResponse{
		FileName:    name,
		ContentType: export.ContentType(uc.cfg.Charset),
		Content:     content,
	}, nil
}
