package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decision is a proposed discretionary expense awaiting guardian approval.
type Decision struct {
	ID                   string
	ClientID             string
	PotjeID              string
	Title                string
	Description          *string
	Amount               decimal.Decimal
	Status               Status
	NeedsHelp            bool
	BewindvoerderMessage *string
	ApprovedAt           *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Populated by reads that join them in.
	Potje      *Potje
	Reflection *Reflection
}

// Reflection is the client's rating of an approved decision after the fact.
type Reflection struct {
	ID                 string
	DecisionID         string
	SatisfactionRating int
	Notes              *string
	CreatedAt          time.Time
}
