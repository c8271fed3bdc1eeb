package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
)

type potjesRepo struct {
	db dbtx
}

const potjeColumns = `id, client_id, name, icon, monthly_budget, current_spent, reset_day, created_at, updated_at`

func scanPotje(row scanner) (domain.Potje, error) {
	var (
		p    domain.Potje
		icon sql.NullString
	)
	err := row.Scan(&p.ID, &p.ClientID, &p.Name, &icon, &p.MonthlyBudget, &p.CurrentSpent,
		&p.ResetDay, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Potje{}, mapNotFound(err)
	}
	p.Icon = mapNullStringPtr(icon)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func (r *potjesRepo) CreatePotje(ctx context.Context, p domain.Potje) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO potjes (`+potjeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ClientID, p.Name, mapOptionalString(p.Icon), p.MonthlyBudget, p.CurrentSpent,
		p.ResetDay, p.CreatedAt.UTC(), p.UpdatedAt.UTC())
	return mapConstraint(err)
}

func (r *potjesRepo) GetPotje(ctx context.Context, id string) (domain.Potje, error) {
	return scanPotje(r.db.QueryRowContext(ctx,
		`SELECT `+potjeColumns+` FROM potjes WHERE id = ?`, id))
}

func (r *potjesRepo) ListPotjes(ctx context.Context, clientID string) ([]domain.Potje, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+potjeColumns+` FROM potjes
		WHERE client_id = ?
		ORDER BY name COLLATE NOCASE, id`,
		clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Potje{}
	for rows.Next() {
		p, err := scanPotje(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
