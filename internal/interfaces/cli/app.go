// Package cli implementa la línea de comandos de la libreta (khata).
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/jhoicas/Khatabook-api/internal/application/dto"
	"github.com/jhoicas/Khatabook-api/internal/application/usecase"
	"github.com/jhoicas/Khatabook-api/internal/domain"
)

// App dependencias compartidas por los subcomandos.
type App struct {
	LedgerUC *usecase.LedgerUseCase
	ReportUC *usecase.ReportUseCase
	// SnapshotUC opcional: si es nil no se registra el comando history.
	SnapshotUC *usecase.SnapshotUseCase
	Out        io.Writer
	Err        io.Writer
}

// Register registra los subcomandos. main llama Register y luego Execute sobre el elegido.
func Register(c *subcommands.Commander, app *App) {
	if app.Out == nil {
		app.Out = os.Stdout
	}
	if app.Err == nil {
		app.Err = os.Stderr
	}
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&customersCmd{app: app}, "customers")
	c.Register(&addCustomerCmd{app: app}, "customers")
	c.Register(&updateCustomerCmd{app: app}, "customers")
	c.Register(&deleteCustomerCmd{app: app}, "customers")

	c.Register(&addTxCmd{app: app}, "transactions")
	c.Register(&deleteTxCmd{app: app}, "transactions")

	c.Register(&dashboardCmd{app: app}, "reports")
	c.Register(&feedCmd{app: app}, "reports")
	c.Register(&exportCmd{app: app}, "reports")
	c.Register(&statementCmd{app: app}, "reports")
	if app.SnapshotUC != nil {
		c.Register(&historyCmd{app: app}, "reports")
	}
}

// fail escribe el error y elige el código de salida.
// Un fallo de persistencia también es fallo: el proceso termina y el cambio se pierde.
func (a *App) fail(err error) subcommands.ExitStatus {
	switch {
	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintf(a.Err, "Error de validación: %v\n", err)
		return subcommands.ExitUsageError
	case errors.Is(err, domain.ErrPersistence):
		fmt.Fprintf(a.Err, "Error: el cambio no se pudo guardar: %v\n", err)
	default:
		fmt.Fprintf(a.Err, "Error: %v\n", err)
	}
	return subcommands.ExitFailure
}

func (a *App) printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}

// writeFile guarda el archivo generado en dir y escribe la ruta.
func (a *App) writeFile(dir string, file *dto.FileResponse) subcommands.ExitStatus {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, file.FileName)
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return a.fail(fmt.Errorf("escribir %s: %w", path, err))
	}
	fmt.Fprintf(a.Out, "Archivo generado: %s\n", path)
	return subcommands.ExitSuccess
}
