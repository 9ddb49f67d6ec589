package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, password_hash, organization_id, roles, superuser, active, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, mapStringNull(u.OrganizationID), u.Roles.String(),
		u.Superuser, u.Active, u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) ListUsersByOrganization(ctx context.Context, orgID string) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE organization_id = ?
		ORDER BY created_at ASC, id ASC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) CountUsersByOrganization(ctx context.Context, orgID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE organization_id = ?`, orgID).Scan(&n)
	return n, err
}

func (r *usersRepo) UpdateUserRoles(ctx context.Context, userID string, roles domain.RoleSet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET roles = ?, updated_at = ? WHERE id = ?`,
		roles.String(), time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) SetUserActive(ctx context.Context, userID string, active bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	var orgID sql.NullString
	var roles string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &orgID, &roles,
		&u.Superuser, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.OrganizationID = mapNullString(orgID)
	set, err := domain.ParseRoleSet(roles)
	if err != nil {
		return domain.User{}, err
	}
	u.Roles = set
	return u, nil
}

func requireRow(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
