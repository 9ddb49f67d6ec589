package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/sitewatch/sitewatch/internal/platform/store"
)

type observationsRepo struct {
	db dbtx
}

const observationColumns = `id, organization_id, title, description, location_id, severity, status,
	observer_id, assigned_to, rectification_notes, photo_after,
	target_date, date_observed, date_closed, is_archived, created_at, updated_at`

func (r *observationsRepo) CreateObservation(ctx context.Context, o domain.Observation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO observations (`+observationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.OrganizationID, o.Title, o.Description, mapStringNull(o.LocationID),
		string(o.Severity), string(o.Status), mapStringNull(o.ObserverID),
		mapStringNull(o.AssignedTo), o.RectificationNotes, o.PhotoAfter,
		mapOptionalTime(o.TargetDate), o.DateObserved, mapOptionalTime(o.DateClosed),
		o.IsArchived, o.CreatedAt, o.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *observationsRepo) GetObservationByID(ctx context.Context, id string) (domain.Observation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+observationColumns+` FROM observations WHERE id = ?`, id)
	return scanObservation(row)
}

// filterClauses translates an ObservationFilter into WHERE fragments. Shared
// by the page query and its count so the two can never drift.
func filterClauses(orgID string, f store.ObservationFilter) (string, []any) {
	where := []string{"organization_id = ?"}
	args := []any{orgID}

	if !f.IncludeArchived {
		where = append(where, "is_archived = ?")
		args = append(args, f.Archived)
	}

	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	}
	if f.Severity != "" {
		where = append(where, "severity = ?")
		args = append(args, string(f.Severity))
	}
	if f.LocationID != "" {
		where = append(where, "location_id = ?")
		args = append(args, f.LocationID)
	}
	if f.AssignedTo != "" {
		where = append(where, "assigned_to = ?")
		args = append(args, f.AssignedTo)
	}
	if f.ObserverID != "" {
		where = append(where, "observer_id = ?")
		args = append(args, f.ObserverID)
	}
	if f.Search != "" {
		where = append(where, `(title LIKE ? COLLATE NOCASE
			OR description LIKE ? COLLATE NOCASE
			OR location_id IN (SELECT id FROM locations WHERE name LIKE ? COLLATE NOCASE)
			OR observer_id IN (SELECT id FROM users WHERE email LIKE ? COLLATE NOCASE))`)
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if f.From != nil {
		where = append(where, "date_observed >= ?")
		args = append(args, *f.From)
	}
	if f.To != nil {
		where = append(where, "date_observed <= ?")
		args = append(args, *f.To)
	}

	return strings.Join(where, " AND "), args
}

func (r *observationsRepo) ListObservations(ctx context.Context, orgID string, f store.ObservationFilter, limit, offset int) (store.ObservationPage, error) {
	where, args := filterClauses(orgID, f)

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM observations WHERE `+where, args...).Scan(&total); err != nil {
		return store.ObservationPage{}, err
	}

	query := `SELECT ` + observationColumns + ` FROM observations WHERE ` + where +
		` ORDER BY date_observed DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return store.ObservationPage{}, err
	}
	defer rows.Close()

	var items []domain.Observation
	for rows.Next() {
		o, err := scanObservation(rows)
		if err != nil {
			return store.ObservationPage{}, err
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return store.ObservationPage{}, err
	}
	return store.ObservationPage{Items: items, Total: total}, nil
}

func (r *observationsRepo) UpdateObservation(ctx context.Context, o domain.Observation) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE observations SET
			title = ?, description = ?, location_id = ?, severity = ?, status = ?,
			assigned_to = ?, rectification_notes = ?, photo_after = ?,
			target_date = ?, date_observed = ?, date_closed = ?, is_archived = ?, updated_at = ?
		WHERE id = ?`,
		o.Title, o.Description, mapStringNull(o.LocationID), string(o.Severity), string(o.Status),
		mapStringNull(o.AssignedTo), o.RectificationNotes, o.PhotoAfter,
		mapOptionalTime(o.TargetDate), o.DateObserved, mapOptionalTime(o.DateClosed),
		o.IsArchived, time.Now().UTC(), o.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *observationsRepo) DeleteObservation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM observations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *observationsRepo) CountObservationsByOrganization(ctx context.Context, orgID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM observations WHERE organization_id = ?`, orgID).Scan(&n)
	return n, err
}

func (r *observationsRepo) CountObservationsByStatus(ctx context.Context, orgID string) (map[domain.Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM observations
		WHERE organization_id = ? AND is_archived = 0
		GROUP BY status`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.Status]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		st, err := domain.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		out[st] = n
	}
	return out, rows.Err()
}

func (r *observationsRepo) CountObservationsBySeverity(ctx context.Context, orgID string) (map[domain.Severity]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT severity, COUNT(*) FROM observations
		WHERE organization_id = ? AND is_archived = 0
		GROUP BY severity`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.Severity]int)
	for rows.Next() {
		var severity string
		var n int
		if err := rows.Scan(&severity, &n); err != nil {
			return nil, err
		}
		sv, err := domain.ParseSeverity(severity)
		if err != nil {
			return nil, err
		}
		out[sv] = n
	}
	return out, rows.Err()
}

func (r *observationsRepo) CountObservationsByLocation(ctx context.Context, orgID string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT location_id, COUNT(*) FROM observations
		WHERE organization_id = ? AND is_archived = 0 AND location_id IS NOT NULL
		GROUP BY location_id`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var locationID sql.NullString
		var n int
		if err := rows.Scan(&locationID, &n); err != nil {
			return nil, err
		}
		out[mapNullString(locationID)] = n
	}
	return out, rows.Err()
}

func (r *observationsRepo) CountObservationsByMonth(ctx context.Context, orgID string) (map[string]int, error) {
	// substr instead of strftime so the bucket works on any ISO-prefixed
	// time encoding the driver writes.
	rows, err := r.db.QueryContext(ctx, `
		SELECT substr(date_observed, 1, 7), COUNT(*) FROM observations
		WHERE organization_id = ? AND is_archived = 0
		GROUP BY 1 ORDER BY 1 ASC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var month string
		var n int
		if err := rows.Scan(&month, &n); err != nil {
			return nil, err
		}
		out[month] = n
	}
	return out, rows.Err()
}

func (r *observationsRepo) CountOverdueObservations(ctx context.Context, orgID string, now time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM observations
		WHERE organization_id = ? AND is_archived = 0 AND status != ?
		AND target_date IS NOT NULL AND target_date < ?`,
		orgID, string(domain.StatusClosed), now).Scan(&n)
	return n, err
}

func scanObservation(row interface{ Scan(...any) error }) (domain.Observation, error) {
	var o domain.Observation
	var locationID, observerID, assignedTo sql.NullString
	var severity, status string
	var targetDate, dateClosed sql.NullTime
	if err := row.Scan(&o.ID, &o.OrganizationID, &o.Title, &o.Description, &locationID,
		&severity, &status, &observerID, &assignedTo, &o.RectificationNotes, &o.PhotoAfter,
		&targetDate, &o.DateObserved, &dateClosed, &o.IsArchived, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return domain.Observation{}, mapNotFound(err)
	}

	sv, err := domain.ParseSeverity(severity)
	if err != nil {
		return domain.Observation{}, err
	}
	st, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Observation{}, err
	}

	o.LocationID = mapNullString(locationID)
	o.Severity = sv
	o.Status = st
	o.ObserverID = mapNullString(observerID)
	o.AssignedTo = mapNullString(assignedTo)
	o.TargetDate = mapNullTimePtr(targetDate)
	o.DateClosed = mapNullTimePtr(dateClosed)
	return o, nil
}
