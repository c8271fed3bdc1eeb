package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
)

type moneyRequestsRepo struct {
	db dbtx
}

const moneyRequestColumns = `id, client_id, amount, category, description, photo_url, status,
	bewindvoerder_message, approved_at, created_at, updated_at`

func scanMoneyRequest(row scanner) (domain.MoneyRequest, error) {
	var (
		m          domain.MoneyRequest
		desc, msg  sql.NullString
		approvedAt sql.NullTime
	)
	err := row.Scan(&m.ID, &m.ClientID, &m.Amount, &m.Category, &desc, &m.PhotoURL, &m.Status,
		&msg, &approvedAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.MoneyRequest{}, mapNotFound(err)
	}
	m.Description = mapNullStringPtr(desc)
	m.BewindvoerderMessage = mapNullStringPtr(msg)
	m.ApprovedAt = mapNullTimePtr(approvedAt)
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}

func (r *moneyRequestsRepo) CreateMoneyRequest(ctx context.Context, m domain.MoneyRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO money_requests (`+moneyRequestColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ClientID, m.Amount, m.Category, mapOptionalString(m.Description), m.PhotoURL,
		string(m.Status), mapOptionalString(m.BewindvoerderMessage), mapOptionalTime(m.ApprovedAt),
		m.CreatedAt.UTC(), m.UpdatedAt.UTC())
	return mapConstraint(err)
}

func (r *moneyRequestsRepo) GetMoneyRequest(ctx context.Context, id string) (domain.MoneyRequest, error) {
	return scanMoneyRequest(r.db.QueryRowContext(ctx,
		`SELECT `+moneyRequestColumns+` FROM money_requests WHERE id = ?`, id))
}

func (r *moneyRequestsRepo) ListMoneyRequests(ctx context.Context, clientID string) ([]domain.MoneyRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+moneyRequestColumns+` FROM money_requests
		WHERE client_id = ?
		ORDER BY created_at DESC, id DESC`,
		clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MoneyRequest{}
	for rows.Next() {
		m, err := scanMoneyRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *moneyRequestsRepo) SetMoneyRequestStatus(
	ctx context.Context,
	id string,
	o domain.Outcome,
	at time.Time,
	onlyPending bool,
) error {
	return expectOne(setStatus(ctx, r.db, "money_requests", id, o, at, onlyPending))
}
