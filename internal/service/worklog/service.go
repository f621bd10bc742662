package worklog

import (
	"context"
	"time"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/config"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/worklog"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/period"
)

type service struct {
	repo worklog.Repository
	loc  *time.Location
}

func NewWorkLogService(repo worklog.Repository, cfg *config.Config) worklog.Service {
	return &service{
		repo: repo,
		loc:  cfg.Location(),
	}
}

func (s *service) ListExternalLedger(ctx context.Context, month string) ([]worklog.ExternalLedgerEntryResponse, error) {
	p, err := period.Resolve(month, s.loc)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListExternalSubstitutes(ctx, p.Start, p.End)
	if err != nil {
		return nil, err
	}

	responses := make([]worklog.ExternalLedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toLedgerResponse(e))
	}

	return responses, nil
}

func (s *service) UpdateExternalPayStatus(ctx context.Context, req worklog.UpdateExternalPayStatusRequest) (worklog.ExternalLedgerEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.ExternalLedgerEntryResponse{}, err
	}

	// Look the entry up first so a missing row maps to not-found rather
	// than the not-an-external-substitute conflict.
	if _, err := s.repo.GetByID(ctx, req.ID); err != nil {
		return worklog.ExternalLedgerEntryResponse{}, err
	}

	updated, err := s.repo.UpdateExternalPayStatus(ctx, req.ID, worklog.ExternalPayStatus(req.PayStatus))
	if err != nil {
		return worklog.ExternalLedgerEntryResponse{}, err
	}

	return toLedgerResponse(updated), nil
}

func toLedgerResponse(e worklog.Entry) worklog.ExternalLedgerEntryResponse {
	resp := worklog.ExternalLedgerEntryResponse{
		ID:        e.ID,
		TeacherID: e.TeacherID,
		WorkDate:  e.WorkDate.Format("2006-01-02"),
		Hours:     e.ExternalTeacherHours,
		PayStatus: string(worklog.ExternalPayPending),
	}
	if e.TeacherName != nil {
		resp.TeacherName = *e.TeacherName
	}
	if e.ExternalTeacherPayStatus != nil {
		resp.PayStatus = string(*e.ExternalTeacherPayStatus)
	}
	return resp
}
