package sqlite

import (
	"context"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
)

type locationsRepo struct {
	db dbtx
}

func (r *locationsRepo) CreateLocation(ctx context.Context, l domain.Location) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO locations (id, name, created_at) VALUES (?, ?, ?)`,
		l.ID, l.Name, l.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *locationsRepo) GetLocationByID(ctx context.Context, id string) (domain.Location, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at FROM locations WHERE id = ?`, id)

	var l domain.Location
	if err := row.Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
		return domain.Location{}, mapNotFound(err)
	}
	return l, nil
}

func (r *locationsRepo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at FROM locations ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
