package entity

// Customer representa una contraparte con la que se lleva la libreta (fiado/abonos).
// Transactions se mantiene de la más reciente a la más antigua (orden de inserción).
type Customer struct {
	ID           string
	Name         string
	Phone        string // opcional
	Note         string // opcional, editable
	Transactions []Transaction
}

// CustomerPatch campos a fusionar en UpdateCustomer; nil = no modificar.
type CustomerPatch struct {
	Name  *string
	Phone *string
	Note  *string
}

// Clone devuelve una copia profunda (las transacciones no comparten arreglo).
func (c Customer) Clone() Customer {
	out := c
	if c.Transactions != nil {
		out.Transactions = make([]Transaction, len(c.Transactions))
		copy(out.Transactions, c.Transactions)
	}
	return out
}

// FindTransaction devuelve la posición de la transacción o -1.
func (c Customer) FindTransaction(txID string) int {
	for i, t := range c.Transactions {
		if t.ID == txID {
			return i
		}
	}
	return -1
}
