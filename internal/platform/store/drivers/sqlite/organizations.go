package sqlite

import (
	"context"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
)

type organizationsRepo struct {
	db dbtx
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, o domain.Organization) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organizations (id, name, domain, created_at)
		VALUES (?, ?, ?, ?)`,
		o.ID, o.Name, o.Domain, o.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, domain, created_at
		FROM organizations WHERE id = ?`, id)
	return scanOrganization(row)
}

func (r *organizationsRepo) GetOrganizationByDomain(ctx context.Context, dom string) (domain.Organization, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, domain, created_at
		FROM organizations WHERE domain = ?`, dom)
	return scanOrganization(row)
}

func (r *organizationsRepo) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, domain, created_at
		FROM organizations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Organization
	for rows.Next() {
		var o domain.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Domain, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOrganization(row interface{ Scan(...any) error }) (domain.Organization, error) {
	var o domain.Organization
	if err := row.Scan(&o.ID, &o.Name, &o.Domain, &o.CreatedAt); err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	return o, nil
}
