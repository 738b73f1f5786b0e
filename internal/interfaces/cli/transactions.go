package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
)

type addTxCmd struct {
	app      *App
	customer string
	note     string
	amount   string
	at       string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "registra un movimiento de un cliente" }
func (*addTxCmd) Usage() string {
	return `khata add-tx -customer <id> -note <nota> -amount <monto> [-at <RFC3339>]

  Monto positivo: dinero recibido. Monto negativo: dinero entregado.
`
}

func (p *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.customer, "customer", "", "ID del cliente (requerido).")
	f.StringVar(&p.note, "note", "", "Nota del movimiento (requerida).")
	f.StringVar(&p.amount, "amount", "", "Monto con signo, ej. 500 o -200.50 (requerido).")
	f.StringVar(&p.at, "at", "", "Fecha RFC3339 del movimiento. Por defecto, ahora.")
}

func (p *addTxCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := dto.CreateTransactionRequest{Note: p.note, Amount: dto.AmountInput(p.amount)}
	if p.at != "" {
		at, err := time.Parse(time.RFC3339, p.at)
		if err != nil {
			fmt.Fprintf(p.app.Err, "Error: -at inválido: %v\n", err)
			return subcommands.ExitUsageError
		}
		in.At = &at
	}
	tx, err := p.app.LedgerUC.CreateTransaction(ctx, p.customer, in)
	if err != nil {
		return p.app.fail(err)
	}
	fmt.Fprintf(p.app.Out, "Movimiento registrado: %s %s (%s)\n", tx.Label, tx.AmountDisplay, tx.ID)
	return subcommands.ExitSuccess
}

type deleteTxCmd struct {
	app      *App
	customer string
	tx       string
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "elimina un movimiento" }
func (*deleteTxCmd) Usage() string {
	return `khata delete-tx -customer <id> -tx <id>
`
}

func (p *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.customer, "customer", "", "ID del cliente (requerido).")
	f.StringVar(&p.tx, "tx", "", "ID del movimiento (requerido).")
}

func (p *deleteTxCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.customer == "" || p.tx == "" {
		fmt.Fprintln(p.app.Err, "Error: -customer y -tx son requeridos.")
		return subcommands.ExitUsageError
	}
	if err := p.app.LedgerUC.DeleteTransaction(ctx, p.customer, p.tx); err != nil {
		return p.app.fail(err)
	}
	fmt.Fprintf(p.app.Out, "Movimiento eliminado: %s\n", p.tx)
	return subcommands.ExitSuccess
}
