package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
)

type decisionsRepo struct {
	db dbtx
}

// The potje is inner joined (potje_id is NOT NULL) and the reflection left
// joined so one query loads the whole aggregate.
var decisionSelect = `
	SELECT d.id, d.client_id, d.potje_id, d.title, d.description, d.amount, d.status, d.needs_help,
		d.bewindvoerder_message, d.approved_at, d.created_at, d.updated_at,
		` + prefixed("p", potjeColumns) + `,
		r.id, r.satisfaction_rating, r.notes, r.created_at
	FROM decisions d
	JOIN potjes p ON p.id = d.potje_id
	LEFT JOIN reflections r ON r.decision_id = d.id`

func scanDecision(row scanner) (domain.Decision, error) {
	var (
		d          domain.Decision
		p          domain.Potje
		desc, msg  sql.NullString
		approvedAt sql.NullTime
		icon       sql.NullString
		refID      sql.NullString
		refRating  sql.NullInt64
		refNotes   sql.NullString
		refCreated sql.NullTime
	)
	err := row.Scan(
		&d.ID, &d.ClientID, &d.PotjeID, &d.Title, &desc, &d.Amount, &d.Status, &d.NeedsHelp,
		&msg, &approvedAt, &d.CreatedAt, &d.UpdatedAt,
		&p.ID, &p.ClientID, &p.Name, &icon, &p.MonthlyBudget, &p.CurrentSpent, &p.ResetDay,
		&p.CreatedAt, &p.UpdatedAt,
		&refID, &refRating, &refNotes, &refCreated,
	)
	if err != nil {
		return domain.Decision{}, mapNotFound(err)
	}

	d.Description = mapNullStringPtr(desc)
	d.BewindvoerderMessage = mapNullStringPtr(msg)
	d.ApprovedAt = mapNullTimePtr(approvedAt)
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()

	p.Icon = mapNullStringPtr(icon)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	d.Potje = &p

	if refID.Valid {
		d.Reflection = &domain.Reflection{
			ID:                 refID.String,
			DecisionID:         d.ID,
			SatisfactionRating: int(refRating.Int64),
			Notes:              mapNullStringPtr(refNotes),
			CreatedAt:          refCreated.Time.UTC(),
		}
	}
	return d, nil
}

func (r *decisionsRepo) CreateDecision(ctx context.Context, d domain.Decision) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO decisions (id, client_id, potje_id, title, description, amount, status, needs_help,
			bewindvoerder_message, approved_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.ClientID, d.PotjeID, d.Title, mapOptionalString(d.Description), d.Amount, string(d.Status),
		d.NeedsHelp, mapOptionalString(d.BewindvoerderMessage), mapOptionalTime(d.ApprovedAt),
		d.CreatedAt.UTC(), d.UpdatedAt.UTC())
	return mapConstraint(err)
}

func (r *decisionsRepo) GetDecision(ctx context.Context, id string) (domain.Decision, error) {
	return scanDecision(r.db.QueryRowContext(ctx, decisionSelect+` WHERE d.id = ?`, id))
}

func (r *decisionsRepo) ListDecisions(ctx context.Context, clientID string) ([]domain.Decision, error) {
	rows, err := r.db.QueryContext(ctx,
		decisionSelect+` WHERE d.client_id = ? ORDER BY d.created_at DESC, d.id DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Decision{}
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *decisionsRepo) SetDecisionStatus(
	ctx context.Context,
	id string,
	o domain.Outcome,
	at time.Time,
	onlyPending bool,
) error {
	return expectOne(setStatus(ctx, r.db, "decisions", id, o, at, onlyPending))
}

func (r *decisionsRepo) CreateReflection(ctx context.Context, ref domain.Reflection) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reflections (id, decision_id, satisfaction_rating, notes, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		ref.ID, ref.DecisionID, ref.SatisfactionRating, mapOptionalString(ref.Notes), ref.CreatedAt.UTC())
	return mapConstraint(err)
}

// setStatus is shared by decisions and money requests, which carry the same
// approval columns. table is never user input.
func setStatus(
	ctx context.Context,
	db dbtx,
	table, id string,
	o domain.Outcome,
	at time.Time,
	onlyPending bool,
) (sql.Result, error) {
	var approvedAt *time.Time
	if o.Status == domain.StatusApproved {
		approvedAt = &at
	}

	query := `UPDATE ` + table + `
		SET status = ?, bewindvoerder_message = ?, approved_at = ?, updated_at = ?
		WHERE id = ?`
	if onlyPending {
		query += ` AND status = 'PENDING'`
	}
	return db.ExecContext(ctx, query,
		string(o.Status), mapOptionalString(o.Message), mapOptionalTime(approvedAt), at.UTC(), id)
}
