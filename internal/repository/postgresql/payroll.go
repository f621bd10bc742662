package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/payroll"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

// ========== PROFILES ==========

func (r *payrollRepository) GetActiveProfile(ctx context.Context, teacherID string, asOf time.Time) (payroll.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, teacher_id, hourly_rate, base_salary_amount, contract_type,
			   insurance_enrolled, effective_from, effective_to, created_at, updated_at
		FROM payroll_profiles
		WHERE teacher_id = $1
			AND effective_from <= $2
			AND (effective_to IS NULL OR effective_to >= $2)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var p payroll.Profile
	err := q.QueryRow(ctx, query, teacherID, asOf).Scan(
		&p.ID, &p.TeacherID, &p.HourlyRate, &p.BaseSalaryAmount, &p.ContractType,
		&p.InsuranceEnrolled, &p.EffectiveFrom, &p.EffectiveTo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Profile{}, payroll.ErrNoActiveProfile
		}
		return payroll.Profile{}, fmt.Errorf("failed to get active payroll profile: %w", err)
	}

	return p, nil
}

// ========== RUNS ==========

const runColumns = `
	pr.id, pr.teacher_id, pr.profile_id, pr.period_start, pr.period_end, pr.period_label,
	pr.contract_type, pr.insurance_enrolled, pr.total_work_hours, pr.hourly_total,
	pr.allowance_total, pr.base_salary_total, pr.gross_pay, pr.deductions_total, pr.net_pay,
	pr.status, pr.message_preview, pr.meta, pr.requested_by, pr.requested_at,
	pr.created_by, pr.created_at, pr.updated_at
`

// Same column set without the table alias, for RETURNING clauses.
const runColumnsPlain = `
	id, teacher_id, profile_id, period_start, period_end, period_label,
	contract_type, insurance_enrolled, total_work_hours, hourly_total,
	allowance_total, base_salary_total, gross_pay, deductions_total, net_pay,
	status, message_preview, meta, requested_by, requested_at,
	created_by, created_at, updated_at
`

func scanRun(row pgx.Row, withTeacherName bool) (payroll.Run, error) {
	var run payroll.Run
	var metaBytes []byte

	dest := []interface{}{
		&run.ID, &run.TeacherID, &run.ProfileID, &run.PeriodStart, &run.PeriodEnd, &run.PeriodLabel,
		&run.ContractType, &run.InsuranceEnrolled, &run.TotalWorkHours, &run.HourlyTotal,
		&run.AllowanceTotal, &run.BaseSalaryTotal, &run.GrossPay, &run.DeductionsTotal, &run.NetPay,
		&run.Status, &run.MessagePreview, &metaBytes, &run.RequestedBy, &run.RequestedAt,
		&run.CreatedBy, &run.CreatedAt, &run.UpdatedAt,
	}
	if withTeacherName {
		dest = append(dest, &run.TeacherName)
	}

	if err := row.Scan(dest...); err != nil {
		return payroll.Run{}, err
	}

	if len(metaBytes) > 0 {
		_ = json.Unmarshal(metaBytes, &run.Meta)
	}

	return run, nil
}

func (r *payrollRepository) GetRunByID(ctx context.Context, id string) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, t.name as teacher_name
		FROM payroll_runs pr
		JOIN teachers t ON pr.teacher_id = t.id
		WHERE pr.id = $1
	`, runColumns)

	run, err := scanRun(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

func (r *payrollRepository) GetRunByTeacherPeriod(ctx context.Context, teacherID string, periodStart time.Time) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_runs pr
		WHERE pr.teacher_id = $1 AND pr.period_start = $2
	`, runColumns)

	run, err := scanRun(q.QueryRow(ctx, query, teacherID, periodStart), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

func (r *payrollRepository) ListRuns(ctx context.Context, filter payroll.RunFilter) ([]payroll.Run, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_runs pr
		JOIN teachers t ON pr.teacher_id = t.id
		WHERE 1=1
	`
	var args []interface{}
	argIdx := 1

	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND pr.period_label = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.TeacherID != nil {
		baseQuery += fmt.Sprintf(" AND pr.teacher_id = $%d", argIdx)
		args = append(args, *filter.TeacherID)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll runs: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, t.name as teacher_name
		%s
		ORDER BY pr.period_start DESC, t.name
		LIMIT $%d OFFSET $%d
	`, runColumns, baseQuery, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.Run
	for rows.Next() {
		run, err := scanRun(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, totalCount, nil
}

// UpsertRun writes the run snapshot keyed by (teacher_id, period_start).
// A recomputation reuses the existing row's id, created_by and created_at;
// it never forks a second run for the same teacher and period.
func (r *payrollRepository) UpsertRun(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	metaJSON, err := json.Marshal(run.Meta)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("failed to marshal run meta: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO payroll_runs (
			teacher_id, profile_id, period_start, period_end, period_label,
			contract_type, insurance_enrolled, total_work_hours, hourly_total,
			allowance_total, base_salary_total, gross_pay, deductions_total, net_pay,
			status, message_preview, meta, requested_by, requested_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (teacher_id, period_start) DO UPDATE SET
			profile_id = EXCLUDED.profile_id,
			period_end = EXCLUDED.period_end,
			period_label = EXCLUDED.period_label,
			contract_type = EXCLUDED.contract_type,
			insurance_enrolled = EXCLUDED.insurance_enrolled,
			total_work_hours = EXCLUDED.total_work_hours,
			hourly_total = EXCLUDED.hourly_total,
			allowance_total = EXCLUDED.allowance_total,
			base_salary_total = EXCLUDED.base_salary_total,
			gross_pay = EXCLUDED.gross_pay,
			deductions_total = EXCLUDED.deductions_total,
			net_pay = EXCLUDED.net_pay,
			status = EXCLUDED.status,
			message_preview = EXCLUDED.message_preview,
			meta = EXCLUDED.meta,
			requested_by = COALESCE(EXCLUDED.requested_by, payroll_runs.requested_by),
			requested_at = COALESCE(EXCLUDED.requested_at, payroll_runs.requested_at),
			updated_at = NOW()
		RETURNING %s
	`, runColumnsPlain)

	row := q.QueryRow(ctx, query,
		run.TeacherID, run.ProfileID, run.PeriodStart, run.PeriodEnd, run.PeriodLabel,
		run.ContractType, run.InsuranceEnrolled, run.TotalWorkHours, run.HourlyTotal,
		run.AllowanceTotal, run.BaseSalaryTotal, run.GrossPay, run.DeductionsTotal, run.NetPay,
		run.Status, run.MessagePreview, metaJSON, run.RequestedBy, run.RequestedAt, run.CreatedBy,
	)

	saved, err := scanRun(row, false)
	if err != nil {
		return payroll.Run{}, fmt.Errorf("failed to upsert payroll run: %w", err)
	}

	return saved, nil
}

func (r *payrollRepository) UpdateRunStatus(ctx context.Context, id string, status payroll.RunStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrRunNotFound
		}
		return fmt.Errorf("failed to update payroll run status: %w", err)
	}

	return nil
}

// ========== RUN ITEMS ==========

// ReplaceRunItems deletes the run's prior item set and inserts the new one.
// Callers must wrap this together with UpsertRun in a single transaction so
// a failed save cannot leave a run with zero items.
func (r *payrollRepository) ReplaceRunItems(ctx context.Context, runID string, items []payroll.RunItem) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_run_items WHERE run_id = $1`, runID); err != nil {
		return fmt.Errorf("failed to delete prior run items: %w", err)
	}

	query := `
		INSERT INTO payroll_run_items (run_id, item_kind, label, amount, metadata, order_index)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, item := range items {
		var metadataJSON []byte
		if item.Metadata != nil {
			var err error
			metadataJSON, err = json.Marshal(item.Metadata)
			if err != nil {
				return fmt.Errorf("failed to marshal run item metadata: %w", err)
			}
		}

		if _, err := q.Exec(ctx, query,
			runID, item.Kind, item.Label, item.Amount, metadataJSON, item.OrderIndex,
		); err != nil {
			return fmt.Errorf("failed to insert run item %q: %w", item.Label, err)
		}
	}

	return nil
}

func (r *payrollRepository) ListRunItems(ctx context.Context, runID string) ([]payroll.RunItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, run_id, item_kind, label, amount, metadata, order_index, created_at
		FROM payroll_run_items
		WHERE run_id = $1
		ORDER BY order_index
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list run items: %w", err)
	}
	defer rows.Close()

	var items []payroll.RunItem
	for rows.Next() {
		var item payroll.RunItem
		var metadataBytes []byte
		if err := rows.Scan(
			&item.ID, &item.RunID, &item.Kind, &item.Label, &item.Amount,
			&metadataBytes, &item.OrderIndex, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run item: %w", err)
		}
		if len(metadataBytes) > 0 {
			_ = json.Unmarshal(metadataBytes, &item.Metadata)
		}
		items = append(items, item)
	}

	return items, nil
}

// ========== ACKNOWLEDGEMENTS ==========

const ackColumns = `
	id, run_id, status, requested_at, confirmed_at, note, updated_by, created_at, updated_at
`

func scanAck(row pgx.Row) (payroll.Acknowledgement, error) {
	var a payroll.Acknowledgement
	err := row.Scan(
		&a.ID, &a.RunID, &a.Status, &a.RequestedAt, &a.ConfirmedAt,
		&a.Note, &a.UpdatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *payrollRepository) GetAcknowledgement(ctx context.Context, runID string) (payroll.Acknowledgement, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_acknowledgements
		WHERE run_id = $1
	`, ackColumns)

	a, err := scanAck(q.QueryRow(ctx, query, runID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Acknowledgement{}, payroll.ErrAckNotFound
		}
		return payroll.Acknowledgement{}, fmt.Errorf("failed to get acknowledgement: %w", err)
	}

	return a, nil
}

// ResetAcknowledgement creates the acknowledgement on first request; on any
// later request it unconditionally drops a prior confirmation back to
// pending. A nil note preserves the worker's existing free-text note.
func (r *payrollRepository) ResetAcknowledgement(ctx context.Context, runID string, note *string, updatedBy string, requestedAt time.Time) (payroll.Acknowledgement, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO payroll_acknowledgements (run_id, status, requested_at, confirmed_at, note, updated_by)
		VALUES ($1, 'pending', $2, NULL, $3, $4)
		ON CONFLICT (run_id) DO UPDATE SET
			status = 'pending',
			requested_at = EXCLUDED.requested_at,
			confirmed_at = NULL,
			note = COALESCE(EXCLUDED.note, payroll_acknowledgements.note),
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
		RETURNING %s
	`, ackColumns)

	a, err := scanAck(q.QueryRow(ctx, query, runID, requestedAt, note, updatedBy))
	if err != nil {
		return payroll.Acknowledgement{}, fmt.Errorf("failed to reset acknowledgement: %w", err)
	}

	return a, nil
}

func (r *payrollRepository) ConfirmAcknowledgement(ctx context.Context, runID string, note *string, updatedBy string, confirmedAt time.Time) (payroll.Acknowledgement, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE payroll_acknowledgements
		SET status = 'confirmed',
			confirmed_at = $2,
			note = COALESCE($3, note),
			updated_by = $4,
			updated_at = NOW()
		WHERE run_id = $1 AND status = 'pending'
		RETURNING %s
	`, ackColumns)

	a, err := scanAck(q.QueryRow(ctx, query, runID, confirmedAt, note, updatedBy))
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, getErr := r.GetAcknowledgement(ctx, runID); getErr != nil {
				return payroll.Acknowledgement{}, getErr
			}
			return payroll.Acknowledgement{}, payroll.ErrAckNotPending
		}
		return payroll.Acknowledgement{}, fmt.Errorf("failed to confirm acknowledgement: %w", err)
	}

	return a, nil
}
