package domain

import "strings"

// Catalogs are autocomplete suggestion lists collected as a side effect
// of entry creation. They are convenience data, not part of the
// accounting invariants.
type Catalogs struct {
	Agents         []string `json:"agents"`
	ExpenseTypes   []string `json:"expenseTypes"`
	MoneyLocations []string `json:"moneyLocations"`
}

// NewCatalogs returns empty suggestion lists.
func NewCatalogs() Catalogs {
	return Catalogs{
		Agents:         []string{},
		ExpenseTypes:   []string{},
		MoneyLocations: []string{},
	}
}

// AppendUnique appends a trimmed value unless it is blank or already
// present under case-insensitive comparison. Returns the resulting list
// and whether anything was added.
func AppendUnique(values []string, raw string) ([]string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return values, false
	}
	for _, item := range values {
		if strings.EqualFold(item, value) {
			return values, false
		}
	}
	return append(values, value), true
}

// Clone returns an independent copy of the suggestion lists.
func (c Catalogs) Clone() Catalogs {
	return Catalogs{
		Agents:         append([]string(nil), c.Agents...),
		ExpenseTypes:   append([]string(nil), c.ExpenseTypes...),
		MoneyLocations: append([]string(nil), c.MoneyLocations...),
	}
}
