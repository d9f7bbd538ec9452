package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// NormalizeAmount folds arbitrary numeric input into the integer money
// representation: non-finite values become 0, everything else is rounded
// half away from zero. There is no sub-unit currency precision anywhere
// in the ledger.
func NormalizeAmount(value float64) int64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return decimal.NewFromFloat(value).Round(0).IntPart()
}

// Totals are the figures derived from one day's raw entry lists.
// They are computed on read, never stored.
type Totals struct {
	DailyProfit      int64 `json:"dailyProfit"`
	TotalExpenses    int64 `json:"totalExpenses"`
	EffectiveProfit  int64 `json:"effectiveProfit"`
	TotalAdvances    int64 `json:"totalAdvances"`
	TotalDues        int64 `json:"totalDues"`
	TotalMoney       int64 `json:"totalMoney"`
	UserMoneySum     int64 `json:"userMoneySum"`
	TotalDistributed int64 `json:"totalDistributed"`
}

// SumProfits totals the price of all profit entries.
func SumProfits(entries []ProfitEntry) int64 {
	var sum int64
	for i := range entries {
		sum += entries[i].TotalPrice
	}
	return sum
}

// SumExpenses totals all expense amounts.
func SumExpenses(entries []ExpenseEntry) int64 {
	var sum int64
	for i := range entries {
		sum += entries[i].Amount
	}
	return sum
}

// SumAdvances totals all advance amounts.
func SumAdvances(entries []AdvanceEntry) int64 {
	var sum int64
	for i := range entries {
		sum += entries[i].Amount
	}
	return sum
}

// SumDues totals all due amounts.
func SumDues(entries []DueEntry) int64 {
	var sum int64
	for i := range entries {
		sum += entries[i].Amount
	}
	return sum
}

// SumMoneyEntries totals the user-declared cash distribution.
func SumMoneyEntries(entries []MoneyEntry) int64 {
	var sum int64
	for i := range entries {
		sum += entries[i].Amount
	}
	return sum
}

// ComputeTotals derives all summary figures from a day snapshot.
// An unset opening balance counts as 0 here; the store gates writes on
// it separately.
func ComputeTotals(day *DayLedger) Totals {
	dailyProfit := SumProfits(day.Profits)
	totalExpenses := SumExpenses(day.Expenses)
	effectiveProfit := dailyProfit - totalExpenses
	totalAdvances := SumAdvances(day.Advances)
	totalDues := SumDues(day.Dues)

	var openingBalance int64
	if day.OpeningBalance != nil {
		openingBalance = *day.OpeningBalance
	}

	userMoneySum := SumMoneyEntries(day.MoneyEntries)

	return Totals{
		DailyProfit:      dailyProfit,
		TotalExpenses:    totalExpenses,
		EffectiveProfit:  effectiveProfit,
		TotalAdvances:    totalAdvances,
		TotalDues:        totalDues,
		TotalMoney:       openingBalance + effectiveProfit + totalAdvances,
		UserMoneySum:     userMoneySum,
		TotalDistributed: userMoneySum + totalDues,
	}
}

// PricePerMeter returns the rounded per-meter rate for a profit entry,
// or 0 when meters is not a positive count.
func PricePerMeter(totalPrice, meters int64) int64 {
	if meters <= 0 {
		return 0
	}
	return decimal.NewFromInt(totalPrice).
		Div(decimal.NewFromInt(meters)).
		Round(0).
		IntPart()
}
