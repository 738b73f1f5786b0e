package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/application/usecase"
	"github.com/jhoicas/Khatabook-api/internal/domain/repository"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Khatabook-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Khatabook-api/internal/interfaces/http"
	"github.com/jhoicas/Khatabook-api/pkg/config"
	"github.com/jhoicas/Khatabook-api/pkg/logger"
	"github.com/jhoicas/Khatabook-api/pkg/money"
	"github.com/jhoicas/Khatabook-api/pkg/phone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Ledger.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento de la libreta")
	}
	defer closeStore()

	m := metrics.New()
	book, err := ledger.Open(ctx, store,
		ledger.WithLogger(log.Component("ledger")),
		ledger.WithDateLayout(cfg.Ledger.DateLayout),
		ledger.WithObserver(m),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar libreta")
	}

	moneyFmt, err := money.NewFormatter(cfg.Display.Currency)
	if err != nil {
		log.Fatal().Err(err).Msg("moneda de visualización")
	}
	display := usecase.NewDisplay(moneyFmt, phone.NewNormalizer(cfg.Display.PhoneRegion))

	ledgerUC := usecase.NewLedgerUseCase(book, display)
	reportUC := usecase.NewReportUseCase(book, display, infrapdf.NewMarotoStatementGenerator(), usecase.ReportConfig{
		Issuer:     cfg.App.Name,
		Charset:    cfg.Export.Charset,
		DateLayout: cfg.Ledger.DateLayout,
	})
	// solo el almacenamiento postgres guarda historial
	history, _ := store.(repository.SnapshotHistory)
	snapshotUC := usecase.NewSnapshotUseCase(history, display)

	app := httpRouter.NewApp(cfg.App.Name, httpRouter.RouterDeps{
		LedgerUC:   ledgerUC,
		ReportUC:   reportUC,
		SnapshotUC: snapshotUC,
		Metrics:    m,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
