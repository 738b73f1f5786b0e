// Command khata administra la libreta desde la terminal usando el mismo
// almacenamiento que la API (LEDGER_STORE, LEDGER_NAMESPACE, ...).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/application/usecase"
	"github.com/jhoicas/Khatabook-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/Khatabook-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/storage"
	"github.com/jhoicas/Khatabook-api/internal/interfaces/cli"
	"github.com/jhoicas/Khatabook-api/pkg/config"
	"github.com/jhoicas/Khatabook-api/pkg/logger"
	"github.com/jhoicas/Khatabook-api/pkg/money"
	"github.com/jhoicas/Khatabook-api/pkg/phone"
)

func main() {
	os.Exit(int(run()))
}

func run() subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return subcommands.ExitFailure
	}

	// stdout queda libre para la salida de los comandos.
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   os.Stderr,
	})

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Error().Err(err).Msg("abrir almacenamiento de la libreta")
		return subcommands.ExitFailure
	}
	defer closeStore()

	book, err := ledger.Open(ctx, store,
		ledger.WithLogger(log.Component("ledger")),
		ledger.WithDateLayout(cfg.Ledger.DateLayout),
	)
	if err != nil {
		log.Error().Err(err).Msg("cargar libreta")
		return subcommands.ExitFailure
	}

	moneyFmt, err := money.NewFormatter(cfg.Display.Currency)
	if err != nil {
		log.Error().Err(err).Msg("moneda de visualización")
		return subcommands.ExitFailure
	}
	display := usecase.NewDisplay(moneyFmt, phone.NewNormalizer(cfg.Display.PhoneRegion))

	history, _ := store.(repository.SnapshotHistory)

	cmdr := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cli.Register(cmdr, &cli.App{
		LedgerUC: usecase.NewLedgerUseCase(book, display),
		ReportUC: usecase.NewReportUseCase(book, display, infrapdf.NewMarotoStatementGenerator(), usecase.ReportConfig{
			Issuer:     cfg.App.Name,
			Charset:    cfg.Export.Charset,
			DateLayout: cfg.Ledger.DateLayout,
		}),
		SnapshotUC: usecase.NewSnapshotUseCase(history, display),
	})

	flag.Parse()
	return cmdr.Execute(ctx)
}
