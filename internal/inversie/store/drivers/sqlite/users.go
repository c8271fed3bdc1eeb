package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, type, email, pin_hash, first_name, last_name, language, text_size,
	high_contrast, biometrics_enabled, created_at, updated_at`

func scanUser(row scanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Type, &u.Email, &u.PINHash, &u.FirstName, &u.LastName, &u.Language, &u.TextSize,
		&u.HighContrast, &u.BiometricsEnabled, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, strings.ToLower(strings.TrimSpace(email))))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, string(u.Type), strings.ToLower(u.Email), u.PINHash, u.FirstName, u.LastName, u.Language, string(u.TextSize),
		u.HighContrast, u.BiometricsEnabled, u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdatePINHash(ctx context.Context, userID, hash string, at time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET pin_hash = ?, updated_at = ? WHERE id = ?`,
		hash, at.UTC(), userID))
}

func (r *usersRepo) UpdateSettings(ctx context.Context, u domain.User) error {
	return expectOne(r.db.ExecContext(ctx, `
		UPDATE users
		SET language = ?, text_size = ?, high_contrast = ?, biometrics_enabled = ?, updated_at = ?
		WHERE id = ?`,
		u.Language, string(u.TextSize), u.HighContrast, u.BiometricsEnabled, u.UpdatedAt.UTC(), u.ID))
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
