// Package export serializa la libreta a CSV (por cliente, completo y resumen) y define
// los nombres de archivo de cada exportación.
package export

import (
	"regexp"
	"strings"

	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
)

// Nombres fijos de las exportaciones globales.
const (
	AllTransactionsFileName = "khatabook_all_transactions.csv"
	SummaryFileName         = "khatabook_summary.csv"
	customerFileSuffix      = "_transactions.csv"
	statementFileSuffix     = "_statement.pdf"
)

var (
	customerHeader = []string{"Tx ID", "Note", "Amount", "Date"}
	allHeader      = []string{"Customer", "Tx ID", "Note", "Amount", "Date"}
	summaryHeader  = []string{"Customer", "Balance"}

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// ExportCustomer CSV con los movimientos del cliente en su orden actual.
func ExportCustomer(c entity.Customer) string {
	rows := make([][]string, 0, len(c.Transactions)+1)
	rows = append(rows, customerHeader)
	for _, t := range c.Transactions {
		rows = append(rows, []string{t.ID, t.Note, t.Amount.String(), t.Date})
	}
	return encodeRows(rows)
}

// ExportAll CSV de todos los movimientos, agrupados por cliente en el orden de la libreta.
func ExportAll(customers []entity.Customer) string {
	rows := [][]string{allHeader}
	for _, c := range customers {
		for _, t := range c.Transactions {
			rows = append(rows, []string{c.Name, t.ID, t.Note, t.Amount.String(), t.Date})
		}
	}
	return encodeRows(rows)
}

// ExportSummary CSV con un saldo por cliente.
func ExportSummary(balances []ledger.CustomerBalance) string {
	rows := make([][]string, 0, len(balances)+1)
	rows = append(rows, summaryHeader)
	for _, b := range balances {
		rows = append(rows, []string{b.Name, b.Balance.String()})
	}
	return encodeRows(rows)
}

// CustomerFileName nombre del CSV de un cliente: espacios consecutivos -> "_".
func CustomerFileName(name string) string {
	return whitespaceRun.ReplaceAllString(name, "_") + customerFileSuffix
}

// StatementFileName nombre del PDF de estado de cuenta del cliente.
func StatementFileName(name string) string {
	return whitespaceRun.ReplaceAllString(name, "_") + statementFileSuffix
}

// encodeRows entrecomilla todos los campos y duplica las comillas internas.
// encoding/csv solo entrecomilla cuando hace falta, por eso se arma a mano.
func encodeRows(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}
