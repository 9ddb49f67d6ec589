package sqlite

import (
	"context"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
)

type demoRequestsRepo struct {
	db dbtx
}

func (r *demoRequestsRepo) CreateDemoRequest(ctx context.Context, d domain.DemoRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO demo_requests (id, full_name, email, whatsapp_number, company, job_title, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.FullName, d.Email, d.WhatsappNumber, d.Company, d.JobTitle, d.Message, d.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *demoRequestsRepo) ListDemoRequests(ctx context.Context) ([]domain.DemoRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, full_name, email, whatsapp_number, company, job_title, message, created_at
		FROM demo_requests ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DemoRequest
	for rows.Next() {
		var d domain.DemoRequest
		if err := rows.Scan(&d.ID, &d.FullName, &d.Email, &d.WhatsappNumber,
			&d.Company, &d.JobTitle, &d.Message, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
