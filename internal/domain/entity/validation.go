package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Khatabook-api/internal/domain"
)

// ValidateCustomerName recorta espacios y exige un nombre no vacío.
func ValidateCustomerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &domain.ValidationError{Field: "name", Reason: "es requerido"}
	}
	return name, nil
}

// ValidateNote recorta espacios y exige una descripción no vacía.
func ValidateNote(note string) (string, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return "", &domain.ValidationError{Field: "note", Reason: "es requerida"}
	}
	return note, nil
}

// ParseAmount convierte el texto ingresado en un decimal finito.
// decimal rechaza NaN, Inf y cualquier texto no numérico.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, &domain.ValidationError{Field: "amount", Reason: "es requerido"}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &domain.ValidationError{Field: "amount", Reason: "debe ser un número válido"}
	}
	return d, nil
}
