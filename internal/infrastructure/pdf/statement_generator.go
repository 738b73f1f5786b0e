// Package pdf genera el estado de cuenta de un cliente en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + título     │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + teléfono  │  QR tel: (si es válido)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Nota | Recibido | Entregado                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Recibido / Entregado / SALDO                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Khatabook-api/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 0, Green: 120, Blue: 60}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.StatementGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa export.StatementGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(_ context.Context, data export.StatementData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta "+data.Customer.Name, true).
		WithAuthor(nonEmpty(data.Issuer, "Khatabook"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(data)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data export.StatementData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(data.Issuer, "Khatabook"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ESTADO DE CUENTA", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+data.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: nombre, teléfono y nota; QR tel: cuando el teléfono quedó en E.164.
func customerRow(data export.StatementData) core.Row {
	info := col.New(9).Add(
		text.New("CLIENTE", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(data.Customer.Name, props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 6,
		}),
		text.New(fmt.Sprintf("Tel: %s   |   Movimientos: %d",
			nonEmpty(data.PhoneDisplay, "—"), len(data.Customer.Transactions),
		), props.Text{Size: 8, Top: 13, Color: colorGray}),
	)
	if strings.HasPrefix(data.PhoneDisplay, "+") {
		return row.New(24).Add(info, col.New(3).Add(code.NewQr("tel:"+data.PhoneDisplay, props.Rect{
			Percent: 90,
			Center:  true,
		})))
	}
	return row.New(20).Add(info, col.New(3))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Nota", 5, align.Left),
		h("Recibido", 2, align.Right),
		h("Entregado", 2, align.Right),
	)
}

// tableRows: una fila por movimiento, en el orden de la libreta (más reciente primero).
func tableRows(data export.StatementData) []core.Row {
	txs := data.Customer.Transactions
	if len(txs) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(txs))
	for i, t := range txs {
		amount := t.Amount.String()
		if i < len(data.AmountDisplays) {
			amount = data.AmountDisplays[i]
		}
		received, given := "", ""
		if t.IsReceived() {
			received = amount
		} else {
			given = strings.TrimPrefix(amount, "-")
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(t.Date, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(t.Label(), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(received, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGreen})),
			col.New(2).Add(text.New(given, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorRed})),
		))
	}
	return result
}

func totalsRow(data export.StatementData) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top, Color: c})
	}
	balanceColor := colorGreen
	if data.Balance.IsNegative() {
		balanceColor = colorRed
	}
	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Total recibido:", 1),
			label("Total entregado:", 7),
			text.New("SALDO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 14,
			}),
		),
		col.New(3).Add(
			value(data.ReceivedDisplay, 1, colorGreen),
			value(data.GivenDisplay, 7, colorRed),
			text.New(data.BalanceDisplay, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: balanceColor, Right: 1, Top: 14,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
