// Package phone normaliza teléfonos de clientes para mostrarlos.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalizer convierte a E.164 usando una región por defecto.
type Normalizer struct {
	region string
}

// NewNormalizer region ISO 3166 (ej. IN) para números sin prefijo internacional.
func NewNormalizer(region string) *Normalizer {
	return &Normalizer{region: strings.ToUpper(strings.TrimSpace(region))}
}

// E164 devuelve el número en formato E.164 y true si es un número válido para su región.
func (n *Normalizer) E164(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	num, err := phonenumbers.Parse(raw, n.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

// Display E.164 si el número es válido; si no, el texto original sin cambios.
// El teléfono es texto libre en la libreta: nunca se rechaza.
func (n *Normalizer) Display(raw string) string {
	if e164, ok := n.E164(raw); ok {
		return e164
	}
	return raw
}
