package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
)

type guardiansRepo struct {
	db dbtx
}

func (r *guardiansRepo) CreateRelation(ctx context.Context, rel domain.GuardianRelation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO guardian_relations (client_id, guardian_id, created_at)
		VALUES (?, ?, ?)`,
		rel.ClientID, rel.GuardianID, rel.CreatedAt.UTC())
	return mapConstraint(err)
}

func (r *guardiansRepo) RelationExists(ctx context.Context, clientID, guardianID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM guardian_relations
		WHERE client_id = ? AND guardian_id = ?`,
		clientID, guardianID,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *guardiansRepo) ListClientOverviews(ctx context.Context, guardianID string) ([]domain.ClientOverview, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+prefixed("u", userColumns)+`,
			(SELECT COUNT(*) FROM decisions d WHERE d.client_id = u.id AND d.status = 'PENDING'),
			(SELECT COUNT(*) FROM money_requests m WHERE m.client_id = u.id AND m.status = 'PENDING'),
			(SELECT MAX(ts) FROM (
				SELECT updated_at AS ts FROM decisions WHERE client_id = u.id
				UNION ALL
				SELECT updated_at AS ts FROM money_requests WHERE client_id = u.id
			))
		FROM guardian_relations g
		JOIN users u ON u.id = g.client_id
		WHERE g.guardian_id = ?
		ORDER BY u.last_name COLLATE NOCASE, u.first_name COLLATE NOCASE, u.id`,
		guardianID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ClientOverview{}
	for rows.Next() {
		var (
			o    domain.ClientOverview
			last sql.NullString
		)
		err := rows.Scan(
			&o.Client.ID, &o.Client.Type, &o.Client.Email, &o.Client.PINHash, &o.Client.FirstName,
			&o.Client.LastName, &o.Client.Language, &o.Client.TextSize, &o.Client.HighContrast,
			&o.Client.BiometricsEnabled, &o.Client.CreatedAt, &o.Client.UpdatedAt,
			&o.PendingDecisions, &o.PendingMoneyRequests, &last,
		)
		if err != nil {
			return nil, err
		}
		if o.LastActivity, err = parseNullTimeText(last); err != nil {
			return nil, fmt.Errorf("client %s: %w", o.Client.ID, err)
		}
		o.Client.CreatedAt = o.Client.CreatedAt.UTC()
		o.Client.UpdatedAt = o.Client.UpdatedAt.UTC()
		out = append(out, o)
	}
	return out, rows.Err()
}
