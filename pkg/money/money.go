// Package money formatea montos decimales con el símbolo y separadores de su moneda.
package money

import (
	"fmt"
	"math"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter formatea montos en una moneda ISO 4217.
type Formatter struct {
	cur *gomoney.Currency
}

// NewFormatter valida el código de moneda.
func NewFormatter(code string) (*Formatter, error) {
	cur := gomoney.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if cur == nil {
		return nil, fmt.Errorf("moneda desconocida %q", code)
	}
	return &Formatter{cur: cur}, nil
}

// Code código ISO de la moneda.
func (f *Formatter) Code() string { return f.cur.Code }

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// Format monto con símbolo y separadores, redondeado a los decimales de la moneda.
func (f *Formatter) Format(amount decimal.Decimal) string {
	minor := amount.Round(int32(f.cur.Fraction)).Shift(int32(f.cur.Fraction))
	if minor.Abs().GreaterThan(maxMinor) {
		return f.formatLarge(minor)
	}
	return f.cur.Formatter().Format(minor.IntPart())
}

// formatLarge sigue la plantilla de la moneda para montos que no caben en int64.
func (f *Formatter) formatLarge(minor decimal.Decimal) string {
	digits := minor.Abs().String()
	intPart, frac := digits, ""
	if f.cur.Fraction > 0 {
		cut := len(digits) - f.cur.Fraction
		intPart, frac = digits[:cut], digits[cut:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.cur.Thousand)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(f.cur.Decimal)
		b.WriteString(frac)
	}

	out := strings.NewReplacer("1", b.String(), "$", f.cur.Grapheme).Replace(f.cur.Template)
	if minor.IsNegative() {
		return "-" + out
	}
	return out
}
