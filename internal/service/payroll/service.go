package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/config"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/notification"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/payroll"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/teacher"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/user"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/worklog"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/database"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/period"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type service struct {
	repo             payroll.Repository
	worklogRepo      worklog.Repository
	teacherRepo      teacher.Repository
	notificationSvc  notification.Service
	db               *database.DB
	loc              *time.Location
	allowancePerWeek decimal.Decimal
}

func NewPayrollService(
	repo payroll.Repository,
	worklogRepo worklog.Repository,
	teacherRepo teacher.Repository,
	notificationSvc notification.Service,
	db *database.DB,
	cfg *config.Config,
) payroll.Service {
	return &service{
		repo:             repo,
		worklogRepo:      worklogRepo,
		teacherRepo:      teacherRepo,
		notificationSvc:  notificationSvc,
		db:               db,
		loc:              cfg.Location(),
		allowancePerWeek: decimal.NewFromInt(int64(cfg.Payroll.WeeklyAllowanceHours)),
	}
}

// computation is the shared result of one wage calculation, before any
// persistence decision.
type computation struct {
	teacher   teacher.Teacher
	profile   payroll.Profile
	period    period.Period
	breakdown payroll.Breakdown
}

func (s *service) compute(ctx context.Context, req payroll.ComputeRequest) (computation, error) {
	if err := req.Validate(); err != nil {
		return computation{}, err
	}

	p, err := period.Resolve(req.Month, s.loc)
	if err != nil {
		return computation{}, err
	}

	t, err := s.teacherRepo.GetByID(ctx, req.TeacherID)
	if err != nil {
		return computation{}, err
	}

	profile, err := s.repo.GetActiveProfile(ctx, req.TeacherID, p.Start)
	if err != nil {
		return computation{}, err
	}

	entries, err := s.worklogRepo.ListApprovedForRange(ctx, req.TeacherID, p.Start, p.End)
	if err != nil {
		return computation{}, err
	}

	summaries := BuildWeeklySummaries(p, entries, s.allowancePerWeek)
	breakdown := ComputeBreakdown(profile, summaries, req.Adjustments, req.DeductionDetails)

	return computation{teacher: t, profile: profile, period: p, breakdown: breakdown}, nil
}

func (s *service) Preview(ctx context.Context, req payroll.ComputeRequest) (payroll.BreakdownResponse, error) {
	c, err := s.compute(ctx, req)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	b := c.breakdown
	return payroll.BreakdownResponse{
		TeacherID:        req.TeacherID,
		PeriodLabel:      c.period.Label,
		PeriodStart:      c.period.Start.Format("2006-01-02"),
		PeriodEnd:        c.period.End.Format("2006-01-02"),
		TotalWorkHours:   b.TotalWorkHours,
		HourlyTotal:      b.HourlyTotal,
		AllowanceHours:   b.AllowanceHours,
		AllowanceTotal:   b.AllowanceTotal,
		BaseSalaryTotal:  b.BaseSalaryTotal,
		GrossPay:         b.GrossPay,
		DeductionsTotal:  b.DeductionsTotal,
		NetPay:           b.NetPay,
		WeeklySummaries:  b.WeeklySummaries,
		Adjustments:      b.Adjustments,
		DeductionDetails: b.DeductionDetails,
	}, nil
}

func (s *service) SaveDraft(ctx context.Context, req payroll.ComputeRequest) (payroll.SavedRunResponse, error) {
	return s.saveRun(ctx, req, payroll.RunStatusDraft)
}

func (s *service) RequestConfirmation(ctx context.Context, req payroll.ComputeRequest) (payroll.SavedRunResponse, error) {
	return s.saveRun(ctx, req, payroll.RunStatusPendingAck)
}

// saveRun recomputes and persists the run snapshot for (teacher, period).
// Recomputing an existing run overwrites it in place and drops it back to
// the target status; a paid run is immutable and rejects recomputation.
// The run row, its item set and the acknowledgement reset commit atomically.
func (s *service) saveRun(ctx context.Context, req payroll.ComputeRequest, status payroll.RunStatus) (payroll.SavedRunResponse, error) {
	actor, ok := user.FromContext(ctx)
	if !ok {
		return payroll.SavedRunResponse{}, user.ErrInvalidToken
	}

	c, err := s.compute(ctx, req)
	if err != nil {
		return payroll.SavedRunResponse{}, err
	}

	existing, err := s.repo.GetRunByTeacherPeriod(ctx, req.TeacherID, c.period.Start)
	if err != nil && !errors.Is(err, payroll.ErrRunNotFound) {
		return payroll.SavedRunResponse{}, err
	}
	if err == nil && existing.Status == payroll.RunStatusPaid {
		return payroll.SavedRunResponse{}, payroll.ErrRunAlreadyPaid
	}

	b := c.breakdown
	preview := fmt.Sprintf("%s payroll for %s: net pay %s", c.period.Display(), c.teacher.Name, b.NetPay.StringFixed(0))

	run := payroll.Run{
		TeacherID:         req.TeacherID,
		ProfileID:         c.profile.ID,
		PeriodStart:       c.period.Start,
		PeriodEnd:         c.period.End,
		PeriodLabel:       c.period.Label,
		ContractType:      c.profile.ContractType,
		InsuranceEnrolled: c.profile.InsuranceEnrolled,
		TotalWorkHours:    b.TotalWorkHours,
		HourlyTotal:       b.HourlyTotal,
		AllowanceTotal:    b.AllowanceTotal,
		BaseSalaryTotal:   b.BaseSalaryTotal,
		GrossPay:          b.GrossPay,
		DeductionsTotal:   b.DeductionsTotal,
		NetPay:            b.NetPay,
		Status:            status,
		MessagePreview:    &preview,
		Meta: payroll.RunMeta{
			WeeklySummaries:  b.WeeklySummaries,
			Adjustments:      b.Adjustments,
			DeductionDetails: b.DeductionDetails,
			Note:             req.Note,
		},
		CreatedBy: actor.UserID,
	}

	if status == payroll.RunStatusPendingAck {
		now := time.Now().In(s.loc)
		run.RequestedBy = &actor.UserID
		run.RequestedAt = &now
	}

	var saved payroll.Run
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var txErr error
		saved, txErr = s.repo.UpsertRun(txCtx, run)
		if txErr != nil {
			return txErr
		}

		if txErr = s.repo.ReplaceRunItems(txCtx, saved.ID, BuildRunItems(b)); txErr != nil {
			return txErr
		}

		if status == payroll.RunStatusPendingAck {
			if _, txErr = s.repo.ResetAcknowledgement(txCtx, saved.ID, nil, actor.UserID, *run.RequestedAt); txErr != nil {
				return txErr
			}
		}

		return nil
	})
	if err != nil {
		return payroll.SavedRunResponse{}, err
	}

	if status == payroll.RunStatusPendingAck {
		s.notify(ctx, notification.CreateNotificationRequest{
			RecipientID: run.TeacherID,
			SenderID:    &actor.UserID,
			Type:        notification.TypePayrollConfirmationRequested,
			Title:       "Payroll confirmation requested",
			Message:     preview,
			Data:        map[string]interface{}{"run_id": saved.ID, "period_label": run.PeriodLabel},
		})
	}

	return payroll.SavedRunResponse{RunID: saved.ID, Status: string(saved.Status)}, nil
}

func (s *service) Confirm(ctx context.Context, runID string, note *string) (payroll.RunResponse, error) {
	actor, ok := user.FromContext(ctx)
	if !ok {
		return payroll.RunResponse{}, user.ErrInvalidToken
	}

	run, err := s.repo.GetRunByID(ctx, runID)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	// A teacher may only confirm their own run; the existence of other
	// teachers' runs is not disclosed.
	if actor.Role == user.RoleTeacher {
		if actor.TeacherID == nil || *actor.TeacherID != run.TeacherID {
			return payroll.RunResponse{}, payroll.ErrRunNotFound
		}
	}

	now := time.Now().In(s.loc)
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, txErr := s.repo.ConfirmAcknowledgement(txCtx, runID, note, actor.UserID, now); txErr != nil {
			return txErr
		}
		return s.repo.UpdateRunStatus(txCtx, runID, payroll.RunStatusConfirmed)
	})
	if err != nil {
		return payroll.RunResponse{}, err
	}

	if run.RequestedBy != nil {
		s.notify(ctx, notification.CreateNotificationRequest{
			RecipientID: *run.RequestedBy,
			SenderID:    &actor.UserID,
			Type:        notification.TypePayrollConfirmed,
			Title:       "Payroll confirmed",
			Message:     fmt.Sprintf("%s confirmed the %s payroll", displayName(run.TeacherName), run.PeriodLabel),
			Data:        map[string]interface{}{"run_id": runID, "period_label": run.PeriodLabel},
		})
	}

	return s.GetRun(ctx, runID)
}

func (s *service) MarkPaid(ctx context.Context, runID string) error {
	actor, ok := user.FromContext(ctx)
	if !ok {
		return user.ErrInvalidToken
	}

	run, err := s.repo.GetRunByID(ctx, runID)
	if err != nil {
		return err
	}
	if run.Status == payroll.RunStatusPaid {
		return payroll.ErrRunAlreadyPaid
	}

	var ackStatus *payroll.AckStatus
	ack, err := s.repo.GetAcknowledgement(ctx, runID)
	if err != nil && !errors.Is(err, payroll.ErrAckNotFound) {
		return err
	}
	if err == nil {
		ackStatus = &ack.Status
	}

	if !payroll.CanMarkPaid(run.Status, ackStatus) {
		return payroll.ErrRunNotConfirmed
	}

	if err := s.repo.UpdateRunStatus(ctx, runID, payroll.RunStatusPaid); err != nil {
		return err
	}

	s.notify(ctx, notification.CreateNotificationRequest{
		RecipientID: run.TeacherID,
		SenderID:    &actor.UserID,
		Type:        notification.TypePayrollMarkedPaid,
		Title:       "Payroll paid",
		Message:     fmt.Sprintf("Your %s payroll has been marked paid", run.PeriodLabel),
		Data:        map[string]interface{}{"run_id": runID, "period_label": run.PeriodLabel},
	})

	return nil
}

func (s *service) GetRun(ctx context.Context, id string) (payroll.RunResponse, error) {
	run, err := s.repo.GetRunByID(ctx, id)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	// Teachers see only their own runs.
	if actor, ok := user.FromContext(ctx); ok && actor.Role == user.RoleTeacher {
		if actor.TeacherID == nil || *actor.TeacherID != run.TeacherID {
			return payroll.RunResponse{}, payroll.ErrRunNotFound
		}
	}

	items, err := s.repo.ListRunItems(ctx, id)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	var ack *payroll.Acknowledgement
	if a, err := s.repo.GetAcknowledgement(ctx, id); err == nil {
		ack = &a
	} else if !errors.Is(err, payroll.ErrAckNotFound) {
		return payroll.RunResponse{}, err
	}

	return toRunResponse(run, items, ack), nil
}

func (s *service) ListRuns(ctx context.Context, filter payroll.RunFilter) (payroll.ListRunsResponse, error) {
	runs, total, err := s.repo.ListRuns(ctx, filter)
	if err != nil {
		return payroll.ListRunsResponse{}, err
	}

	data := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		data = append(data, toRunResponse(run, nil, nil))
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	return payroll.ListRunsResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *service) ListRunsForTeacher(ctx context.Context, teacherID string, month *string) (payroll.ListRunsResponse, error) {
	return s.ListRuns(ctx, payroll.RunFilter{
		TeacherID: &teacherID,
		Month:     month,
		Page:      1,
		Limit:     24,
	})
}

// notify enqueues a notification without letting a delivery failure surface
// to the caller. The business state change has already committed.
func (s *service) notify(ctx context.Context, req notification.CreateNotificationRequest) {
	if s.notificationSvc == nil {
		return
	}
	if err := s.notificationSvc.QueueNotification(ctx, req); err != nil {
		slog.Warn("failed to queue payroll notification", "type", req.Type, "recipient_id", req.RecipientID, "error", err)
	}
}

func displayName(name *string) string {
	if name == nil {
		return "the teacher"
	}
	return *name
}

func toRunResponse(run payroll.Run, items []payroll.RunItem, ack *payroll.Acknowledgement) payroll.RunResponse {
	resp := payroll.RunResponse{
		ID:                run.ID,
		TeacherID:         run.TeacherID,
		ProfileID:         run.ProfileID,
		PeriodLabel:       run.PeriodLabel,
		PeriodStart:       run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         run.PeriodEnd.Format("2006-01-02"),
		ContractType:      string(run.ContractType),
		InsuranceEnrolled: run.InsuranceEnrolled,
		TotalWorkHours:    run.TotalWorkHours,
		HourlyTotal:       run.HourlyTotal,
		AllowanceTotal:    run.AllowanceTotal,
		BaseSalaryTotal:   run.BaseSalaryTotal,
		GrossPay:          run.GrossPay,
		DeductionsTotal:   run.DeductionsTotal,
		NetPay:            run.NetPay,
		Status:            string(run.Status),
		MessagePreview:    run.MessagePreview,
		Meta:              run.Meta,
		CreatedAt:         run.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         run.UpdatedAt.Format(time.RFC3339),
	}

	if run.TeacherName != nil {
		resp.TeacherName = *run.TeacherName
	}
	if run.RequestedAt != nil {
		requestedAt := run.RequestedAt.Format(time.RFC3339)
		resp.RequestedAt = &requestedAt
	}

	for _, item := range items {
		resp.Items = append(resp.Items, payroll.RunItemResponse{
			ID:         item.ID,
			Kind:       string(item.Kind),
			Label:      item.Label,
			Amount:     item.Amount,
			Metadata:   item.Metadata,
			OrderIndex: item.OrderIndex,
		})
	}

	if ack != nil {
		ackResp := payroll.AcknowledgementResponse{
			Status:      string(ack.Status),
			RequestedAt: ack.RequestedAt.Format(time.RFC3339),
			Note:        ack.Note,
		}
		if ack.ConfirmedAt != nil {
			confirmedAt := ack.ConfirmedAt.Format(time.RFC3339)
			ackResp.ConfirmedAt = &confirmedAt
		}
		resp.Acknowledgement = &ackResp
	}

	return resp
}
