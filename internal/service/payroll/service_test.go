package payroll

import (
	"context"
	"os"
	"testing"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/config"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/payroll"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/user"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/database"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManagerID = "11111111-1111-1111-1111-111111111111"

func payrollTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func newTestService(t *testing.T, db *database.DB) payroll.Service {
	t.Helper()
	cfg := &config.Config{
		Payroll: config.PayrollConfig{Timezone: "Asia/Seoul", WeeklyAllowanceHours: 8},
	}
	payrollRepo := postgresql.NewPayrollRepository(db)
	worklogRepo := postgresql.NewWorkLogRepository(db)
	teacherRepo := postgresql.NewTeacherRepository(db)
	return NewPayrollService(payrollRepo, worklogRepo, teacherRepo, nil, db, cfg)
}

func truncatePayrollTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	tables := []string{"payroll_acknowledgements", "payroll_run_items", "payroll_runs", "payroll_profiles", "work_log_entries", "teachers"}
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func seedTeacher(t *testing.T, ctx context.Context, db *database.DB, name string) string {
	t.Helper()
	var id string
	err := db.QueryRow(ctx, `
		INSERT INTO teachers (id, name, email, active, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, true, NOW(), NOW())
		RETURNING id
	`, name, name+"@example.com").Scan(&id)
	require.NoError(t, err)
	return id
}

func seedProfile(t *testing.T, ctx context.Context, db *database.DB, teacherID string, hourlyRate int) {
	t.Helper()
	_, err := db.Exec(ctx, `
		INSERT INTO payroll_profiles (id, teacher_id, hourly_rate, contract_type, insurance_enrolled, effective_from, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, 'freelancer', false, '2020-01-01', NOW(), NOW())
	`, teacherID, hourlyRate)
	require.NoError(t, err)
}

func seedWorkDay(t *testing.T, ctx context.Context, db *database.DB, teacherID, date string, hours float64) {
	t.Helper()
	_, err := db.Exec(ctx, `
		INSERT INTO work_log_entries (id, teacher_id, work_date, status, work_hours, review_status, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, 'work', $3, 'approved', NOW(), NOW())
	`, teacherID, date, hours)
	require.NoError(t, err)
}

func managerCtx() context.Context {
	return user.WithContext(context.Background(), user.Context{UserID: testManagerID, Role: user.RoleManager})
}

func TestPayrollLifecycle(t *testing.T) {
	db := payrollTestDB(t)
	ctx := managerCtx()
	truncatePayrollTables(t, ctx, db)

	teacherID := seedTeacher(t, ctx, db, "lifecycle-teacher")
	seedProfile(t, ctx, db, teacherID, 15000)
	// One eligible week: 4 days x 5h in the week of Aug 3-9.
	for _, date := range []string{"2026-08-03", "2026-08-04", "2026-08-05", "2026-08-06"} {
		seedWorkDay(t, ctx, db, teacherID, date, 5)
	}

	svc := newTestService(t, db)
	req := payroll.ComputeRequest{TeacherID: teacherID, Month: "2026-08"}

	preview, err := svc.Preview(ctx, req)
	require.NoError(t, err)
	assert.True(t, preview.TotalWorkHours.Equal(decimal.NewFromInt(20)))
	assert.True(t, preview.HourlyTotal.Equal(decimal.NewFromInt(300000)))
	assert.True(t, preview.AllowanceTotal.Equal(decimal.NewFromInt(120000)))
	assert.True(t, preview.NetPay.Equal(decimal.NewFromInt(420000)))

	// Draft, then recompute: same run, no fork.
	draft, err := svc.SaveDraft(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusDraft), draft.Status)

	redraft, err := svc.SaveDraft(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, draft.RunID, redraft.RunID)

	// Request confirmation: run flips to pending_ack with a pending ack.
	requested, err := svc.RequestConfirmation(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, draft.RunID, requested.RunID)
	assert.Equal(t, string(payroll.RunStatusPendingAck), requested.Status)

	run, err := svc.GetRun(ctx, requested.RunID)
	require.NoError(t, err)
	require.NotNil(t, run.Acknowledgement)
	assert.Equal(t, string(payroll.AckStatusPending), run.Acknowledgement.Status)
	assert.NotEmpty(t, run.Items)

	// Paying before confirmation is a conflict.
	err = svc.MarkPaid(ctx, requested.RunID)
	assert.ErrorIs(t, err, payroll.ErrRunNotConfirmed)

	// Worker confirms.
	note := "looks right"
	confirmed, err := svc.Confirm(ctx, requested.RunID, &note)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusConfirmed), confirmed.Status)
	require.NotNil(t, confirmed.Acknowledgement)
	assert.Equal(t, string(payroll.AckStatusConfirmed), confirmed.Acknowledgement.Status)
	assert.NotNil(t, confirmed.Acknowledgement.ConfirmedAt)

	// Confirming twice is a conflict.
	_, err = svc.Confirm(ctx, requested.RunID, nil)
	assert.ErrorIs(t, err, payroll.ErrAckNotPending)

	require.NoError(t, svc.MarkPaid(ctx, requested.RunID))
	err = svc.MarkPaid(ctx, requested.RunID)
	assert.ErrorIs(t, err, payroll.ErrRunAlreadyPaid)

	// A paid run rejects recomputation.
	_, err = svc.SaveDraft(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrRunAlreadyPaid)
}

func TestRequestConfirmationResetsAcknowledgement(t *testing.T) {
	db := payrollTestDB(t)
	ctx := managerCtx()
	truncatePayrollTables(t, ctx, db)

	teacherID := seedTeacher(t, ctx, db, "re-request-teacher")
	seedProfile(t, ctx, db, teacherID, 10000)
	seedWorkDay(t, ctx, db, teacherID, "2026-08-03", 8)

	svc := newTestService(t, db)
	req := payroll.ComputeRequest{TeacherID: teacherID, Month: "2026-08"}

	first, err := svc.RequestConfirmation(ctx, req)
	require.NoError(t, err)

	note := "checked"
	_, err = svc.Confirm(ctx, first.RunID, &note)
	require.NoError(t, err)

	// Re-requesting drops the ack back to pending and keeps the note.
	second, err := svc.RequestConfirmation(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.RunID, second.RunID)

	run, err := svc.GetRun(ctx, second.RunID)
	require.NoError(t, err)
	require.NotNil(t, run.Acknowledgement)
	assert.Equal(t, string(payroll.AckStatusPending), run.Acknowledgement.Status)
	assert.Nil(t, run.Acknowledgement.ConfirmedAt)
	require.NotNil(t, run.Acknowledgement.Note)
	assert.Equal(t, "checked", *run.Acknowledgement.Note)
}

func TestTeacherSeesOnlyOwnRun(t *testing.T) {
	db := payrollTestDB(t)
	ctx := managerCtx()
	truncatePayrollTables(t, ctx, db)

	teacherID := seedTeacher(t, ctx, db, "owner-teacher")
	otherID := seedTeacher(t, ctx, db, "other-teacher")
	seedProfile(t, ctx, db, teacherID, 10000)
	seedWorkDay(t, ctx, db, teacherID, "2026-08-03", 8)

	svc := newTestService(t, db)
	saved, err := svc.SaveDraft(ctx, payroll.ComputeRequest{TeacherID: teacherID, Month: "2026-08"})
	require.NoError(t, err)

	otherCtx := user.WithContext(context.Background(), user.Context{
		UserID: "22222222-2222-2222-2222-222222222222", Role: user.RoleTeacher, TeacherID: &otherID,
	})
	_, err = svc.GetRun(otherCtx, saved.RunID)
	assert.ErrorIs(t, err, payroll.ErrRunNotFound)
}

func TestComputeWithoutProfileFails(t *testing.T) {
	db := payrollTestDB(t)
	ctx := managerCtx()
	truncatePayrollTables(t, ctx, db)

	teacherID := seedTeacher(t, ctx, db, "no-profile-teacher")

	svc := newTestService(t, db)
	_, err := svc.Preview(ctx, payroll.ComputeRequest{TeacherID: teacherID, Month: "2026-08"})
	assert.ErrorIs(t, err, payroll.ErrNoActiveProfile)
}
