package domain

// Verdict is the outcome of reconciling the declared cash distribution
// against the expected cash position. The three figures are exactly what
// the operator needs to see when the day refuses to close.
type Verdict struct {
	Matches    bool  `json:"matches"`
	Expected   int64 `json:"expected"`
	Entered    int64 `json:"entered"`
	Difference int64 `json:"difference"`
}

// Reconcile checks the closing identity:
//
//	openingBalance + effectiveProfit + advances = declared cash + dues
//
// Expected is the derived cash position, Entered is what the operator
// accounted for (dues count as automatically-accounted distribution).
func Reconcile(userMoneySum, totalDues, totalMoney int64) Verdict {
	entered := userMoneySum + totalDues
	difference := totalMoney - entered
	return Verdict{
		Matches:    difference == 0,
		Expected:   totalMoney,
		Entered:    entered,
		Difference: difference,
	}
}

// ReconcileTotals runs the closing check on derived totals.
func ReconcileTotals(t Totals) Verdict {
	return Reconcile(t.UserMoneySum, t.TotalDues, t.TotalMoney)
}
