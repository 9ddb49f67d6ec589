package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
)

type subscriptionsRepo struct {
	db dbtx
}

func (r *subscriptionsRepo) CreateSubscription(ctx context.Context, s domain.Subscription) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, organization_id, plan_id, active, started_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.OrganizationID, s.PlanID, s.Active, s.StartedAt, mapOptionalTime(s.ExpiresAt),
	)
	return mapConstraint(err)
}

func (r *subscriptionsRepo) GetSubscriptionByOrganization(ctx context.Context, orgID string) (domain.Subscription, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, organization_id, plan_id, active, started_at, expires_at
		FROM subscriptions WHERE organization_id = ?`, orgID)

	var s domain.Subscription
	var expiresAt sql.NullTime
	if err := row.Scan(&s.ID, &s.OrganizationID, &s.PlanID, &s.Active, &s.StartedAt, &expiresAt); err != nil {
		return domain.Subscription{}, mapNotFound(err)
	}
	s.ExpiresAt = mapNullTimePtr(expiresAt)
	return s, nil
}

func (r *subscriptionsRepo) UpdateSubscriptionPlan(ctx context.Context, orgID, planID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions SET plan_id = ? WHERE organization_id = ?`, planID, orgID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *subscriptionsRepo) UpdateSubscriptionState(ctx context.Context, orgID string, active bool, expiresAt *time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions SET active = ?, expires_at = ? WHERE organization_id = ?`,
		active, mapOptionalTime(expiresAt), orgID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
