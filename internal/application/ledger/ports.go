package ledger

// Operaciones de mutación, usadas como etiqueta en logs y métricas.
const (
	OpAddCustomer       = "add_customer"
	OpUpdateCustomer    = "update_customer"
	OpDeleteCustomer    = "delete_customer"
	OpAddTransaction    = "add_transaction"
	OpDeleteTransaction = "delete_transaction"
)

// Observer recibe notificaciones de la libreta (métricas). Se invoca con el lock tomado:
// las implementaciones no deben llamar de vuelta al Ledger.
type Observer interface {
	MutationApplied(op string)
	PersistFailed(op string)
	CustomersCount(n int)
}

type nopObserver struct{}

func (nopObserver) MutationApplied(string) {}
func (nopObserver) PersistFailed(string)   {}
func (nopObserver) CustomersCount(int)     {}
