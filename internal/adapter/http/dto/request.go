package dto

import (
	"github.com/Aarifshaik/ganga-calc/internal/usecase"
)

// LoginRequest represents a PIN login attempt.
type LoginRequest struct {
	UserID string `json:"user_id"`
	Pin    string `json:"pin"`
}

// SelectDayRequest selects the working calendar day.
type SelectDayRequest struct {
	Date string `json:"date"`
}

// OpeningBalanceRequest sets the day's opening cash balance.
type OpeningBalanceRequest struct {
	Value float64 `json:"value"`
}

// ProfitRequest represents a profit entry upsert. Supplying the ID of an
// existing entry updates it in place.
type ProfitRequest struct {
	ID         string  `json:"id,omitempty"`
	VehicleID  string  `json:"vehicle_id"`
	AgentName  string  `json:"agent_name"`
	Meters     float64 `json:"meters"`
	TotalPrice float64 `json:"total_price"`
}

// ToUseCaseInput converts to use case input.
func (r *ProfitRequest) ToUseCaseInput() usecase.ProfitInput {
	return usecase.ProfitInput{
		ID:         r.ID,
		VehicleID:  r.VehicleID,
		AgentName:  r.AgentName,
		Meters:     r.Meters,
		TotalPrice: r.TotalPrice,
	}
}

// ExpenseRequest represents an expense entry upsert.
type ExpenseRequest struct {
	ID          string  `json:"id,omitempty"`
	VehicleID   string  `json:"vehicle_id"`
	ExpenseType string  `json:"expense_type"`
	Amount      float64 `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *ExpenseRequest) ToUseCaseInput() usecase.ExpenseInput {
	return usecase.ExpenseInput{
		ID:          r.ID,
		VehicleID:   r.VehicleID,
		ExpenseType: r.ExpenseType,
		Amount:      r.Amount,
	}
}

// AdvanceRequest represents an advance entry upsert.
type AdvanceRequest struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Amount  float64 `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *AdvanceRequest) ToUseCaseInput() usecase.AdvanceInput {
	return usecase.AdvanceInput{
		ID:      r.ID,
		Name:    r.Name,
		Details: r.Details,
		Amount:  r.Amount,
	}
}

// DueRequest represents a due entry upsert.
type DueRequest struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Amount  float64 `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *DueRequest) ToUseCaseInput() usecase.DueInput {
	return usecase.DueInput{
		ID:      r.ID,
		Name:    r.Name,
		Details: r.Details,
		Amount:  r.Amount,
	}
}

// MoneyRequest represents a cash-location entry upsert.
type MoneyRequest struct {
	ID           string  `json:"id,omitempty"`
	LocationName string  `json:"location_name"`
	Amount       float64 `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *MoneyRequest) ToUseCaseInput() usecase.MoneyInput {
	return usecase.MoneyInput{
		ID:           r.ID,
		LocationName: r.LocationName,
		Amount:       r.Amount,
	}
}
