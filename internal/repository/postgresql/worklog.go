package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/worklog"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type worklogRepository struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) worklog.Repository {
	return &worklogRepository{db: db}
}

const entryColumns = `
	wl.id, wl.teacher_id, wl.work_date, wl.status, wl.work_hours,
	wl.substitute_type, wl.external_teacher_hours, wl.external_teacher_pay_status,
	wl.review_status, wl.reviewed_by, wl.reviewed_at, wl.created_at, wl.updated_at,
	t.name as teacher_name
`

func scanEntry(row pgx.Row) (worklog.Entry, error) {
	var e worklog.Entry
	err := row.Scan(
		&e.ID, &e.TeacherID, &e.WorkDate, &e.Status, &e.WorkHours,
		&e.SubstituteType, &e.ExternalTeacherHours, &e.ExternalTeacherPayStatus,
		&e.ReviewStatus, &e.ReviewedBy, &e.ReviewedAt, &e.CreatedAt, &e.UpdatedAt,
		&e.TeacherName,
	)
	return e, err
}

// ListApprovedForRange returns only review-approved entries; unapproved rows
// are never visible to payroll aggregation.
func (r *worklogRepository) ListApprovedForRange(ctx context.Context, teacherID string, start, end time.Time) ([]worklog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM work_log_entries wl
		JOIN teachers t ON wl.teacher_id = t.id
		WHERE wl.teacher_id = $1
			AND wl.work_date >= $2 AND wl.work_date < $3
			AND wl.review_status = 'approved'
		ORDER BY wl.work_date
	`, entryColumns)

	rows, err := q.Query(ctx, query, teacherID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved work log entries: %w", err)
	}
	defer rows.Close()

	var entries []worklog.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work log entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *worklogRepository) ListExternalSubstitutes(ctx context.Context, start, end time.Time) ([]worklog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM work_log_entries wl
		JOIN teachers t ON wl.teacher_id = t.id
		WHERE wl.status = 'substitute'
			AND wl.substitute_type = 'external'
			AND wl.review_status = 'approved'
			AND wl.work_date >= $1 AND wl.work_date < $2
		ORDER BY wl.work_date, t.name
	`, entryColumns)

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list external substitute entries: %w", err)
	}
	defer rows.Close()

	var entries []worklog.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan external substitute entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *worklogRepository) GetByID(ctx context.Context, id string) (worklog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM work_log_entries wl
		JOIN teachers t ON wl.teacher_id = t.id
		WHERE wl.id = $1
	`, entryColumns)

	e, err := scanEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.Entry{}, worklog.ErrEntryNotFound
		}
		return worklog.Entry{}, fmt.Errorf("failed to get work log entry: %w", err)
	}

	return e, nil
}

// UpdateExternalPayStatus flips the independent external-substitute pay
// tracker; the covered teacher's run status is never consulted.
func (r *worklogRepository) UpdateExternalPayStatus(ctx context.Context, id string, status worklog.ExternalPayStatus) (worklog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_log_entries wl
		SET external_teacher_pay_status = $2, updated_at = NOW()
		FROM teachers t
		WHERE wl.id = $1 AND wl.teacher_id = t.id
			AND wl.status = 'substitute' AND wl.substitute_type = 'external'
		RETURNING wl.id, wl.teacher_id, wl.work_date, wl.status, wl.work_hours,
			wl.substitute_type, wl.external_teacher_hours, wl.external_teacher_pay_status,
			wl.review_status, wl.reviewed_by, wl.reviewed_at, wl.created_at, wl.updated_at,
			t.name as teacher_name
	`

	e, err := scanEntry(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.Entry{}, worklog.ErrNotExternalSubstitute
		}
		return worklog.Entry{}, fmt.Errorf("failed to update external pay status: %w", err)
	}

	return e, nil
}
