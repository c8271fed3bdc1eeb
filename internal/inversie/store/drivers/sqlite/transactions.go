package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/shopspring/decimal"
)

type transactionsRepo struct {
	db dbtx
}

func (r *transactionsRepo) CreateTransaction(ctx context.Context, t domain.Transaction) error {
	balance := decimal.NullDecimal{}
	if t.BalanceAfter != nil {
		balance = decimal.NewNullDecimal(*t.BalanceAfter)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, client_id, date, description, amount, category, balance_after, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ClientID, t.Date.UTC(), t.Description, t.Amount, mapOptionalString(t.Category),
		balance, t.ImportedAt.UTC())
	return mapConstraint(err)
}

func (r *transactionsRepo) ListTransactions(
	ctx context.Context,
	clientID string,
	f domain.TransactionFilter,
) ([]domain.Transaction, error) {
	var (
		where = []string{"client_id = ?"}
		args  = []any{clientID}
	)
	if f.From != nil {
		where = append(where, "date >= ?")
		args = append(args, f.From.UTC())
	}
	if f.Until != nil {
		where = append(where, "date < ?")
		args = append(args, f.Until.UTC())
	}
	if f.Category != nil {
		where = append(where, "category = ?")
		args = append(args, *f.Category)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_id, date, description, amount, category, balance_after, imported_at
		FROM transactions
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY date DESC, id DESC`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Transaction{}
	for rows.Next() {
		var (
			t        domain.Transaction
			category sql.NullString
			balance  decimal.NullDecimal
		)
		err := rows.Scan(&t.ID, &t.ClientID, &t.Date, &t.Description, &t.Amount, &category,
			&balance, &t.ImportedAt)
		if err != nil {
			return nil, err
		}
		t.Category = mapNullStringPtr(category)
		if balance.Valid {
			b := balance.Decimal
			t.BalanceAfter = &b
		}
		t.Date = t.Date.UTC()
		t.ImportedAt = t.ImportedAt.UTC()
		out = append(out, t)
	}
	return out, rows.Err()
}
