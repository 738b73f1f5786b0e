package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Khatabook-api/pkg/phone"
)

func TestNormalizer_Display(t *testing.T) {
	n := phone.NewNormalizer("in")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"nacional", "98765 43210", "+919876543210"},
		{"internacional", "+1 650-253-0000", "+16502530000"},
		{"corto se conserva", "9999", "9999"},
		{"texto libre", "llamar a la tienda", "llamar a la tienda"},
		{"vacío", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Display(tt.raw))
		})
	}
}

func TestNormalizer_E164(t *testing.T) {
	n := phone.NewNormalizer("IN")
	got, ok := n.E164("9876543210")
	assert.True(t, ok)
	assert.Equal(t, "+919876543210", got)

	_, ok = n.E164("9999")
	assert.False(t, ok)
}
