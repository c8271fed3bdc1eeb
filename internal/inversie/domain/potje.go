package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Potje is a named monthly sub-budget.
type Potje struct {
	ID            string
	ClientID      string
	Name          string
	Icon          *string
	MonthlyBudget decimal.Decimal
	CurrentSpent  decimal.Decimal
	ResetDay      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Remaining is the budget left this month. It goes negative on overspend.
func (p Potje) Remaining() decimal.Decimal {
	return p.MonthlyBudget.Sub(p.CurrentSpent)
}
