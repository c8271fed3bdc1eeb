package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MoneyRequest struct {
	ID                   string
	ClientID             string
	Amount               decimal.Decimal
	Category             string
	Description          *string
	PhotoURL             string
	Status               Status
	BewindvoerderMessage *string
	ApprovedAt           *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
