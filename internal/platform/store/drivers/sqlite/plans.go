package sqlite

import (
	"context"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
)

type plansRepo struct {
	db dbtx
}

const planColumns = `id, name, price_monthly_cents, max_users, max_observations, advanced_dashboard, exports_enabled, created_at`

func (r *plansRepo) CreatePlan(ctx context.Context, p domain.Plan) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO plans (`+planColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.PriceMonthlyCents, p.MaxUsers, p.MaxObservations,
		p.AdvancedDashboard, p.ExportsEnabled, p.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *plansRepo) GetPlanByID(ctx context.Context, id string) (domain.Plan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE id = ?`, id)
	return scanPlan(row)
}

func (r *plansRepo) GetPlanByName(ctx context.Context, name string) (domain.Plan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM plans WHERE name = ?`, name)
	return scanPlan(row)
}

func (r *plansRepo) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+planColumns+` FROM plans ORDER BY price_monthly_cents ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceMonthlyCents, &p.MaxUsers,
			&p.MaxObservations, &p.AdvancedDashboard, &p.ExportsEnabled, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPlan(row interface{ Scan(...any) error }) (domain.Plan, error) {
	var p domain.Plan
	if err := row.Scan(&p.ID, &p.Name, &p.PriceMonthlyCents, &p.MaxUsers,
		&p.MaxObservations, &p.AdvancedDashboard, &p.ExportsEnabled, &p.CreatedAt); err != nil {
		return domain.Plan{}, mapNotFound(err)
	}
	return p, nil
}
