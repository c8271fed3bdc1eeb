package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
)

type notificationsRepo struct {
	db dbtx
}

const notificationColumns = `id, user_id, type, title, message, data, is_read, created_at, published_at`

func (r *notificationsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Notification{}
	for rows.Next() {
		var (
			n           domain.Notification
			data        sql.NullString
			publishedAt sql.NullTime
		)
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &data, &n.IsRead,
			&n.CreatedAt, &publishedAt)
		if err != nil {
			return nil, err
		}
		n.Data = mapNullStringPtr(data)
		n.PublishedAt = mapNullTimePtr(publishedAt)
		n.CreatedAt = n.CreatedAt.UTC()
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (`+notificationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.UserID, string(n.Type), n.Title, n.Message, mapOptionalString(n.Data), n.IsRead,
		n.CreatedAt.UTC(), mapOptionalTime(n.PublishedAt))
	return mapConstraint(err)
}

func (r *notificationsRepo) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	return r.list(ctx, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`,
		userID)
}

func (r *notificationsRepo) MarkRead(ctx context.Context, id, userID string) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE id = ? AND user_id = ?`, id, userID))
}

func (r *notificationsRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE user_id = ? AND is_read = 0`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *notificationsRepo) ListUnpublished(ctx context.Context, limit int) ([]domain.Notification, error) {
	return r.list(ctx, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE published_at IS NULL
		ORDER BY created_at, id
		LIMIT ?`,
		limit)
}

func (r *notificationsRepo) MarkPublished(ctx context.Context, id string, at time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE notifications SET published_at = ? WHERE id = ? AND published_at IS NULL`, at.UTC(), id))
}
