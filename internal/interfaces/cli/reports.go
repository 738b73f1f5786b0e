package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
)

type dashboardCmd struct {
	app    *App
	asJSON bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "totales, saldos por cliente y últimos movimientos" }
func (*dashboardCmd) Usage() string {
	return `khata dashboard [-json]
`
}

func (p *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.asJSON, "json", false, "Salida en JSON.")
}

func (p *dashboardCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dash := p.app.ReportUC.Dashboard()
	if p.asJSON {
		return p.app.printJSON(dash)
	}
	t := dash.Totals
	fmt.Fprintf(p.app.Out, "Recibido:  %s\nEntregado: %s\nNeto:      %s\n\n", t.TotalReceivedDisplay, t.TotalGivenDisplay, t.NetDisplay)

	w := tabwriter.NewWriter(p.app.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CLIENTE\tMOVS\tSALDO")
	for _, c := range dash.Customers {
		fmt.Fprintf(w, "%s\t%d\t%s\n", c.Name, c.TxCount, c.BalanceDisplay)
	}
	if err := w.Flush(); err != nil {
		return p.app.fail(err)
	}
	if len(dash.RecentFeed) > 0 {
		fmt.Fprintln(p.app.Out, "\nÚltimos movimientos:")
		return printFeed(p.app, dash.RecentFeed)
	}
	return subcommands.ExitSuccess
}

type feedCmd struct {
	app    *App
	limit  int
	asJSON bool
}

func (*feedCmd) Name() string { return "feed" }
func (*feedCmd) Synopsis() string {
	return "movimientos de todos los clientes, del más reciente al más antiguo"
}
func (*feedCmd) Usage() string {
	return `khata feed [-limit <n>] [-json]
`
}

func (p *feedCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.limit, "limit", 0, "Máximo de movimientos (0 = todos).")
	f.BoolVar(&p.asJSON, "json", false, "Salida en JSON.")
}

func (p *feedCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.limit < 0 {
		fmt.Fprintln(p.app.Err, "Error: -limit no puede ser negativo.")
		return subcommands.ExitUsageError
	}
	feed := p.app.ReportUC.Feed(dto.FeedRequest{Limit: p.limit})
	if p.asJSON {
		return p.app.printJSON(feed)
	}
	return printFeed(p.app, feed.Items)
}

func printFeed(app *App, items []dto.FeedEntryResponse) subcommands.ExitStatus {
	w := tabwriter.NewWriter(app.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FECHA\tCLIENTE\tDETALLE\tMONTO")
	for _, e := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Transaction.Date, e.CustomerName, e.Transaction.Label, e.Transaction.AmountDisplay)
	}
	if err := w.Flush(); err != nil {
		return app.fail(err)
	}
	return subcommands.ExitSuccess
}

type exportCmd struct {
	app  *App
	kind string
	id   string
	out  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "exporta movimientos o saldos a CSV" }
func (*exportCmd) Usage() string {
	return `khata export -kind customer|all|summary [-id <cliente>] [-o <directorio>]
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "kind", "all", "Tipo de exportación: customer, all o summary.")
	f.StringVar(&p.id, "id", "", "ID del cliente (para -kind customer).")
	f.StringVar(&p.out, "o", ".", "Directorio de salida.")
}

func (p *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var (
		file *dto.FileResponse
		err  error
	)
	switch p.kind {
	case "customer":
		if p.id == "" {
			fmt.Fprintln(p.app.Err, "Error: -id es requerido con -kind customer.")
			return subcommands.ExitUsageError
		}
		file, err = p.app.ReportUC.ExportCustomer(p.id)
	case "all":
		file, err = p.app.ReportUC.ExportAll()
	case "summary":
		file, err = p.app.ReportUC.ExportSummary()
	default:
		fmt.Fprintf(p.app.Err, "Error: -kind desconocido %q.\n", p.kind)
		return subcommands.ExitUsageError
	}
	if err != nil {
		return p.app.fail(err)
	}
	return p.app.writeFile(p.out, file)
}

type statementCmd struct {
	app *App
	id  string
	out string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "genera el estado de cuenta PDF de un cliente" }
func (*statementCmd) Usage() string {
	return `khata statement -id <cliente> [-o <directorio>]
`
}

func (p *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "ID del cliente (requerido).")
	f.StringVar(&p.out, "o", ".", "Directorio de salida.")
}

func (p *statementCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(p.app.Err, "Error: -id es requerido.")
		return subcommands.ExitUsageError
	}
	file, err := p.app.ReportUC.Statement(ctx, p.id)
	if err != nil {
		return p.app.fail(err)
	}
	return p.app.writeFile(p.out, file)
}

type historyCmd struct {
	app    *App
	limit  int
	asJSON bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "últimas escrituras del snapshot con sus totales" }
func (*historyCmd) Usage() string {
	return `khata history [-limit <n>] [-json]
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.limit, "limit", 0, "Máximo de escrituras (0 = 20).")
	f.BoolVar(&p.asJSON, "json", false, "Salida en JSON.")
}

func (p *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.limit < 0 {
		fmt.Fprintln(p.app.Err, "Error: -limit no puede ser negativo.")
		return subcommands.ExitUsageError
	}
	out, err := p.app.SnapshotUC.History(ctx, dto.SnapshotHistoryRequest{Limit: p.limit})
	if err != nil {
		return p.app.fail(err)
	}
	if p.asJSON {
		return p.app.printJSON(out)
	}
	w := tabwriter.NewWriter(p.app.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GUARDADO\tCLIENTES\tRECIBIDO\tENTREGADO\tNETO")
	for _, r := range out.Items {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", r.SavedAt.Local().Format(time.DateTime), r.CustomersCount,
			r.Totals.TotalReceivedDisplay, r.Totals.TotalGivenDisplay, r.Totals.NetDisplay)
	}
	if err := w.Flush(); err != nil {
		return p.app.fail(err)
	}
	return subcommands.ExitSuccess
}
