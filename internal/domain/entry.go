package domain

import "time"

// EntryKind discriminates the five entry lists of a day ledger.
type EntryKind string

const (
	EntryKindProfit  EntryKind = "profit"
	EntryKindExpense EntryKind = "expense"
	EntryKindAdvance EntryKind = "advance"
	EntryKindDue     EntryKind = "due"
	EntryKindMoney   EntryKind = "money"
)

// EntryBase carries the identity and timestamps shared by all entry kinds.
type EntryBase struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfitEntry records one drilling job: which rig, which agent, how many
// meters drilled and the total price charged.
type ProfitEntry struct {
	EntryBase
	VehicleID  string `json:"vehicleId"`
	AgentName  string `json:"agentName"`
	Meters     int64  `json:"meters"`
	TotalPrice int64  `json:"totalPrice"`
}

// ExpenseEntry records money spent on a rig (fuel, repairs, ...).
type ExpenseEntry struct {
	EntryBase
	VehicleID   string `json:"vehicleId"`
	ExpenseType string `json:"expenseType"`
	Amount      int64  `json:"amount"`
}

// AdvanceEntry records cash received in advance from a customer.
type AdvanceEntry struct {
	EntryBase
	Name    string `json:"name"`
	Details string `json:"details"`
	Amount  int64  `json:"amount"`
}

// DueEntry records cash owed to the operation and not yet collected.
type DueEntry struct {
	EntryBase
	Name    string `json:"name"`
	Details string `json:"details"`
	Amount  int64  `json:"amount"`
}

// MoneyEntry records where end-of-day cash physically sits.
type MoneyEntry struct {
	EntryBase
	LocationName string `json:"locationName"`
	Amount       int64  `json:"amount"`
}
