package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
)

type customersCmd struct {
	app    *App
	asJSON bool
}

func (*customersCmd) Name() string     { return "customers" }
func (*customersCmd) Synopsis() string { return "lista los clientes con su saldo" }
func (*customersCmd) Usage() string {
	return `khata customers [-json]

  Lista los clientes, del más reciente al más antiguo, con saldo y cantidad de movimientos.
`
}

func (p *customersCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.asJSON, "json", false, "Salida en JSON.")
}

func (p *customersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list := p.app.LedgerUC.ListCustomers()
	if p.asJSON {
		return p.app.printJSON(list)
	}
	if list.Total == 0 {
		fmt.Fprintln(p.app.Out, "No hay clientes.")
		return subcommands.ExitSuccess
	}
	w := tabwriter.NewWriter(p.app.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tTELÉFONO\tMOVS\tSALDO")
	for _, c := range list.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", c.ID, c.Name, c.Phone, c.TxCount, c.BalanceDisplay)
	}
	if err := w.Flush(); err != nil {
		return p.app.fail(err)
	}
	return subcommands.ExitSuccess
}

type addCustomerCmd struct {
	app   *App
	name  string
	phone string
}

func (*addCustomerCmd) Name() string     { return "add-customer" }
func (*addCustomerCmd) Synopsis() string { return "agrega un cliente" }
func (*addCustomerCmd) Usage() string {
	return `khata add-customer -name <nombre> [-phone <teléfono>]
`
}

func (p *addCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Nombre del cliente (requerido).")
	f.StringVar(&p.phone, "phone", "", "Teléfono (texto libre).")
}

func (p *addCustomerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := p.app.LedgerUC.CreateCustomer(ctx, dto.CreateCustomerRequest{Name: p.name, Phone: p.phone})
	if err != nil {
		return p.app.fail(err)
	}
	fmt.Fprintf(p.app.Out, "Cliente creado: %s (%s)\n", c.Name, c.ID)
	return subcommands.ExitSuccess
}

type updateCustomerCmd struct {
	app   *App
	id    string
	name  string
	phone string
	note  string
}

func (*updateCustomerCmd) Name() string     { return "update-customer" }
func (*updateCustomerCmd) Synopsis() string { return "modifica nombre, teléfono o nota de un cliente" }
func (*updateCustomerCmd) Usage() string {
	return `khata update-customer -id <id> [-name <nombre>] [-phone <teléfono>] [-note <nota>]

  Solo se modifican los campos indicados.
`
}

func (p *updateCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "ID del cliente (requerido).")
	f.StringVar(&p.name, "name", "", "Nuevo nombre.")
	f.StringVar(&p.phone, "phone", "", "Nuevo teléfono.")
	f.StringVar(&p.note, "note", "", "Nueva nota.")
}

func (p *updateCustomerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(p.app.Err, "Error: -id es requerido.")
		return subcommands.ExitUsageError
	}
	var in dto.UpdateCustomerRequest
	// Solo los flags presentes forman el parche: -note "" borra la nota.
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			in.Name = &p.name
		case "phone":
			in.Phone = &p.phone
		case "note":
			in.Note = &p.note
		}
	})
	c, err := p.app.LedgerUC.UpdateCustomer(ctx, p.id, in)
	if err != nil {
		return p.app.fail(err)
	}
	fmt.Fprintf(p.app.Out, "Cliente actualizado: %s (%s)\n", c.Name, c.ID)
	return subcommands.ExitSuccess
}

type deleteCustomerCmd struct {
	app *App
	id  string
}

func (*deleteCustomerCmd) Name() string     { return "delete-customer" }
func (*deleteCustomerCmd) Synopsis() string { return "elimina un cliente y todos sus movimientos" }
func (*deleteCustomerCmd) Usage() string {
	return `khata delete-customer -id <id>
`
}

func (p *deleteCustomerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "ID del cliente (requerido).")
}

func (p *deleteCustomerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(p.app.Err, "Error: -id es requerido.")
		return subcommands.ExitUsageError
	}
	if err := p.app.LedgerUC.DeleteCustomer(ctx, p.id); err != nil {
		return p.app.fail(err)
	}
	fmt.Fprintf(p.app.Out, "Cliente eliminado: %s\n", p.id)
	return subcommands.ExitSuccess
}
