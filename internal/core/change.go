package core

// Change describes a successful mutation of a remote resource.
type Change struct {
	Resource  string `json:"resource"`
	Operation string `json:"operation"`
	ID        int64  `json:"id"`
}

const (
	ResourceCategory     = "category"
	ResourcePocket       = "pocket"
	ResourceTransaction  = "transaction"
	ResourceFixedExpense = "fixed_expense"

	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
	OpPaid    = "paid"
)

// RoutingKey is "<resource>.<operation>".
func (c Change) RoutingKey() string {
	return c.Resource + "." + c.Operation
}
