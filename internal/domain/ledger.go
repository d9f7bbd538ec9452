package domain

import "time"

// DayLedger holds every entry recorded for one calendar day, the opening
// cash balance and the finalized flag. Once IsFinalized is true the
// content is immutable forever; the store enforces this on every write.
type DayLedger struct {
	Date           DayKey         `json:"date"`
	OpeningBalance *int64         `json:"openingBalance"`
	Profits        []ProfitEntry  `json:"profits"`
	Expenses       []ExpenseEntry `json:"expenses"`
	Advances       []AdvanceEntry `json:"advances"`
	Dues           []DueEntry     `json:"dues"`
	MoneyEntries   []MoneyEntry   `json:"moneyEntries"`
	IsFinalized    bool           `json:"isFinalized"`
	FinalizedAt    *time.Time     `json:"finalizedAt"`
}

// NewDayLedger creates an empty, not-finalized ledger with an unset
// opening balance.
func NewDayLedger(date DayKey) *DayLedger {
	return &DayLedger{
		Date:         date,
		Profits:      []ProfitEntry{},
		Expenses:     []ExpenseEntry{},
		Advances:     []AdvanceEntry{},
		Dues:         []DueEntry{},
		MoneyEntries: []MoneyEntry{},
	}
}

// HasOpeningBalance reports whether the opening balance has been set.
// Zero is a valid balance; only the nil sentinel means unset.
func (d *DayLedger) HasOpeningBalance() bool {
	return d.OpeningBalance != nil
}

// SetOpeningBalance sets the opening balance. Negative values are
// allowed and represent a cash deficit carried into the day.
func (d *DayLedger) SetOpeningBalance(value int64) {
	d.OpeningBalance = &value
}

// Finalize marks the ledger permanently read-only, stamping the given
// time. It is a no-op on an already finalized ledger.
func (d *DayLedger) Finalize(at time.Time) {
	if d.IsFinalized {
		return
	}
	d.IsFinalized = true
	d.FinalizedAt = &at
}

// PutProfit replaces the entry with the same ID in place, or prepends
// a new one.
func (d *DayLedger) PutProfit(e ProfitEntry) {
	for i := range d.Profits {
		if d.Profits[i].ID == e.ID {
			d.Profits[i] = e
			return
		}
	}
	d.Profits = append([]ProfitEntry{e}, d.Profits...)
}

// FindProfit returns the entry with the given ID, if present.
func (d *DayLedger) FindProfit(id string) (ProfitEntry, bool) {
	for i := range d.Profits {
		if d.Profits[i].ID == id {
			return d.Profits[i], true
		}
	}
	return ProfitEntry{}, false
}

// RemoveProfit deletes by ID, reporting whether anything was removed.
func (d *DayLedger) RemoveProfit(id string) bool {
	for i := range d.Profits {
		if d.Profits[i].ID == id {
			d.Profits = append(d.Profits[:i], d.Profits[i+1:]...)
			return true
		}
	}
	return false
}

// PutExpense replaces in place by ID or prepends.
func (d *DayLedger) PutExpense(e ExpenseEntry) {
	for i := range d.Expenses {
		if d.Expenses[i].ID == e.ID {
			d.Expenses[i] = e
			return
		}
	}
	d.Expenses = append([]ExpenseEntry{e}, d.Expenses...)
}

// FindExpense returns the entry with the given ID, if present.
func (d *DayLedger) FindExpense(id string) (ExpenseEntry, bool) {
	for i := range d.Expenses {
		if d.Expenses[i].ID == id {
			return d.Expenses[i], true
		}
	}
	return ExpenseEntry{}, false
}

// RemoveExpense deletes by ID, reporting whether anything was removed.
func (d *DayLedger) RemoveExpense(id string) bool {
	for i := range d.Expenses {
		if d.Expenses[i].ID == id {
			d.Expenses = append(d.Expenses[:i], d.Expenses[i+1:]...)
			return true
		}
	}
	return false
}

// PutAdvance replaces in place by ID or prepends.
func (d *DayLedger) PutAdvance(e AdvanceEntry) {
	for i := range d.Advances {
		if d.Advances[i].ID == e.ID {
			d.Advances[i] = e
			return
		}
	}
	d.Advances = append([]AdvanceEntry{e}, d.Advances...)
}

// FindAdvance returns the entry with the given ID, if present.
func (d *DayLedger) FindAdvance(id string) (AdvanceEntry, bool) {
	for i := range d.Advances {
		if d.Advances[i].ID == id {
			return d.Advances[i], true
		}
	}
	return AdvanceEntry{}, false
}

// RemoveAdvance deletes by ID, reporting whether anything was removed.
func (d *DayLedger) RemoveAdvance(id string) bool {
	for i := range d.Advances {
		if d.Advances[i].ID == id {
			d.Advances = append(d.Advances[:i], d.Advances[i+1:]...)
			return true
		}
	}
	return false
}

// PutDue replaces in place by ID or prepends.
func (d *DayLedger) PutDue(e DueEntry) {
	for i := range d.Dues {
		if d.Dues[i].ID == e.ID {
			d.Dues[i] = e
			return
		}
	}
	d.Dues = append([]DueEntry{e}, d.Dues...)
}

// FindDue returns the entry with the given ID, if present.
func (d *DayLedger) FindDue(id string) (DueEntry, bool) {
	for i := range d.Dues {
		if d.Dues[i].ID == id {
			return d.Dues[i], true
		}
	}
	return DueEntry{}, false
}

// RemoveDue deletes by ID, reporting whether anything was removed.
func (d *DayLedger) RemoveDue(id string) bool {
	for i := range d.Dues {
		if d.Dues[i].ID == id {
			d.Dues = append(d.Dues[:i], d.Dues[i+1:]...)
			return true
		}
	}
	return false
}

// PutMoneyEntry replaces in place by ID or prepends.
func (d *DayLedger) PutMoneyEntry(e MoneyEntry) {
	for i := range d.MoneyEntries {
		if d.MoneyEntries[i].ID == e.ID {
			d.MoneyEntries[i] = e
			return
		}
	}
	d.MoneyEntries = append([]MoneyEntry{e}, d.MoneyEntries...)
}

// FindMoneyEntry returns the entry with the given ID, if present.
func (d *DayLedger) FindMoneyEntry(id string) (MoneyEntry, bool) {
	for i := range d.MoneyEntries {
		if d.MoneyEntries[i].ID == id {
			return d.MoneyEntries[i], true
		}
	}
	return MoneyEntry{}, false
}

// RemoveMoneyEntry deletes by ID, reporting whether anything was removed.
func (d *DayLedger) RemoveMoneyEntry(id string) bool {
	for i := range d.MoneyEntries {
		if d.MoneyEntries[i].ID == id {
			d.MoneyEntries = append(d.MoneyEntries[:i], d.MoneyEntries[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so read snapshots never alias the store's
// mutable slices.
func (d *DayLedger) Clone() *DayLedger {
	c := *d
	if d.OpeningBalance != nil {
		v := *d.OpeningBalance
		c.OpeningBalance = &v
	}
	if d.FinalizedAt != nil {
		t := *d.FinalizedAt
		c.FinalizedAt = &t
	}
	c.Profits = append([]ProfitEntry(nil), d.Profits...)
	c.Expenses = append([]ExpenseEntry(nil), d.Expenses...)
	c.Advances = append([]AdvanceEntry(nil), d.Advances...)
	c.Dues = append([]DueEntry(nil), d.Dues...)
	c.MoneyEntries = append([]MoneyEntry(nil), d.MoneyEntries...)
	return &c
}
