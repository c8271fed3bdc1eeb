package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SavingsGoal struct {
	ID            string
	ClientID      string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	ImageURL      *string
	IsCompleted   bool
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var hundred = decimal.NewFromInt(100)

// Progress is CurrentAmount as a percentage of TargetAmount, rounded to two
// decimals and capped at 100.
func (g SavingsGoal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	p := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred).Round(2)
	if p.GreaterThan(hundred) {
		return hundred
	}
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// SavingsGoalPatch is a partial update. Nil fields keep their value.
type SavingsGoalPatch struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *time.Time
	ImageURL      *string
	IsCompleted   *bool
}

// Apply merges p into g. Flipping IsCompleted to true stamps CompletedAt with
// now; flipping it back to false clears it.
func (p SavingsGoalPatch) Apply(g *SavingsGoal, now time.Time) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.TargetDate != nil {
		g.TargetDate = p.TargetDate
	}
	if p.ImageURL != nil {
		g.ImageURL = p.ImageURL
	}
	if p.IsCompleted != nil {
		switch {
		case *p.IsCompleted && !g.IsCompleted:
			g.CompletedAt = &now
		case !*p.IsCompleted:
			g.CompletedAt = nil
		}
		g.IsCompleted = *p.IsCompleted
	}
}
