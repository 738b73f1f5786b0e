package entity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Khatabook-api/internal/domain"
	"github.com/jhoicas/Khatabook-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func TestValidateCustomerName(t *testing.T) {
	name, err := entity.ValidateCustomerName("  Asha  ")
	require.NoError(t, err)
	assert.Equal(t, "Asha", name)

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := entity.ValidateCustomerName(in)
		require.Error(t, err, "nombre %q debe rechazarse", in)
		assert.True(t, errors.Is(err, domain.ErrValidation))

		var vErr *domain.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "name", vErr.Field)
	}
}

func TestValidateNote(t *testing.T) {
	note, err := entity.ValidateNote(" Loan ")
	require.NoError(t, err)
	assert.Equal(t, "Loan", note)

	_, err = entity.ValidateNote("  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "500", want: "500"},
		{in: "-200", want: "-200"},
		{in: " 12.50 ", want: "12.5"},
		{in: "0", want: "0"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Infinity", wantErr: true},
		{in: "12abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := entity.ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTransactionLabel(t *testing.T) {
	assert.Equal(t, "Loan", entity.Transaction{Note: "Loan", Amount: decimal.NewFromInt(-5)}.Label())
	assert.Equal(t, "Received", entity.Transaction{Amount: decimal.NewFromInt(5)}.Label())
	assert.Equal(t, "Received", entity.Transaction{Amount: decimal.Zero}.Label())
	assert.Equal(t, "Given", entity.Transaction{Amount: decimal.NewFromInt(-5)}.Label())
}

func TestCustomerCloneDoesNotShareTransactions(t *testing.T) {
	c := entity.Customer{ID: "c1", Transactions: []entity.Transaction{{ID: "t1"}}}
	cp := c.Clone()
	cp.Transactions[0].ID = "changed"
	assert.Equal(t, "t1", c.Transactions[0].ID)
	assert.Equal(t, 0, c.FindTransaction("t1"))
	assert.Equal(t, -1, c.FindTransaction("nope"))
}
