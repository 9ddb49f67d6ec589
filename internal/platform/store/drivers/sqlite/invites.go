package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, organization_id, email, role, token_hash, used, used_by, expires_at, created_at, updated_at`

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.UserInvite) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_invites (`+inviteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.OrganizationID, inv.Email, string(inv.Role), inv.TokenHash,
		inv.Used, mapStringNull(inv.UsedBy), mapOptionalTime(inv.ExpiresAt),
		inv.CreatedAt, inv.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.UserInvite, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+inviteColumns+` FROM user_invites WHERE token_hash = ?`, hash)
	return scanInvite(row)
}

func (r *invitesRepo) ListInvitesByOrganization(ctx context.Context, orgID string) ([]domain.UserInvite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+inviteColumns+` FROM user_invites
		WHERE organization_id = ?
		ORDER BY created_at DESC, id DESC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UserInvite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// MarkInviteUsed guards on used=0 so two concurrent redemptions cannot both
// succeed; the loser sees zero rows affected.
func (r *invitesRepo) MarkInviteUsed(ctx context.Context, inviteID string, usedByUserID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE user_invites SET used = 1, used_by = ?, updated_at = ?
		WHERE id = ? AND used = 0`,
		mapStringNull(usedByUserID), time.Now().UTC(), inviteID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM user_invites
		WHERE used = 0 AND expires_at IS NOT NULL AND expires_at < ?`,
		time.Now().UTC())
	return err
}

func scanInvite(row interface{ Scan(...any) error }) (domain.UserInvite, error) {
	var inv domain.UserInvite
	var role string
	var usedBy sql.NullString
	var expiresAt sql.NullTime
	if err := row.Scan(&inv.ID, &inv.OrganizationID, &inv.Email, &role, &inv.TokenHash,
		&inv.Used, &usedBy, &expiresAt, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return domain.UserInvite{}, mapNotFound(err)
	}
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return domain.UserInvite{}, err
	}
	inv.Role = parsed
	inv.UsedBy = mapNullString(usedBy)
	inv.ExpiresAt = mapNullTimePtr(expiresAt)
	return inv, nil
}
