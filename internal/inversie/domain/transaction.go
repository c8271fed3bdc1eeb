package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an imported bank transaction. Amount is negative for
// outgoing payments.
type Transaction struct {
	ID           string
	ClientID     string
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	Category     *string
	BalanceAfter *decimal.Decimal
	ImportedAt   time.Time
}

// TransactionFilter narrows a listing. Zero values impose no restriction.
// From is inclusive and Until exclusive.
type TransactionFilter struct {
	From     *time.Time
	Until    *time.Time
	Category *string
}
