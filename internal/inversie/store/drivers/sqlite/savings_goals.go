package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
)

type savingsGoalsRepo struct {
	db dbtx
}

const savingsGoalColumns = `id, client_id, name, target_amount, current_amount, target_date, image_url,
	is_completed, completed_at, created_at, updated_at`

func scanSavingsGoal(row scanner) (domain.SavingsGoal, error) {
	var (
		g           domain.SavingsGoal
		targetDate  sql.NullTime
		imageURL    sql.NullString
		completedAt sql.NullTime
	)
	err := row.Scan(&g.ID, &g.ClientID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &targetDate,
		&imageURL, &g.IsCompleted, &completedAt, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return domain.SavingsGoal{}, mapNotFound(err)
	}
	g.TargetDate = mapNullTimePtr(targetDate)
	g.ImageURL = mapNullStringPtr(imageURL)
	g.CompletedAt = mapNullTimePtr(completedAt)
	g.CreatedAt = g.CreatedAt.UTC()
	g.UpdatedAt = g.UpdatedAt.UTC()
	return g, nil
}

func (r *savingsGoalsRepo) CreateSavingsGoal(ctx context.Context, g domain.SavingsGoal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO savings_goals (`+savingsGoalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.ClientID, g.Name, g.TargetAmount, g.CurrentAmount, mapOptionalTime(g.TargetDate),
		mapOptionalString(g.ImageURL), g.IsCompleted, mapOptionalTime(g.CompletedAt),
		g.CreatedAt.UTC(), g.UpdatedAt.UTC())
	return mapConstraint(err)
}

func (r *savingsGoalsRepo) GetSavingsGoal(ctx context.Context, id string) (domain.SavingsGoal, error) {
	return scanSavingsGoal(r.db.QueryRowContext(ctx,
		`SELECT `+savingsGoalColumns+` FROM savings_goals WHERE id = ?`, id))
}

func (r *savingsGoalsRepo) ListSavingsGoals(ctx context.Context, clientID string) ([]domain.SavingsGoal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+savingsGoalColumns+` FROM savings_goals
		WHERE client_id = ?
		ORDER BY created_at DESC, id DESC`,
		clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SavingsGoal{}
	for rows.Next() {
		g, err := scanSavingsGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *savingsGoalsRepo) UpdateSavingsGoal(ctx context.Context, g domain.SavingsGoal) error {
	return expectOne(r.db.ExecContext(ctx, `
		UPDATE savings_goals
		SET name = ?, target_amount = ?, current_amount = ?, target_date = ?, image_url = ?,
			is_completed = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`,
		g.Name, g.TargetAmount, g.CurrentAmount, mapOptionalTime(g.TargetDate), mapOptionalString(g.ImageURL),
		g.IsCompleted, mapOptionalTime(g.CompletedAt), g.UpdatedAt.UTC(), g.ID))
}

func (r *savingsGoalsRepo) DeleteSavingsGoal(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM savings_goals WHERE id = ?`, id))
}
