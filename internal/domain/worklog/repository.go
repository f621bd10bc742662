package worklog

import (
	"context"
	"time"
)

// Repository reads approved attendance rows for payroll aggregation and
// drives the external substitute ledger. Range arguments are half-open:
// [start, endExclusive).
type Repository interface {
	ListApprovedForRange(ctx context.Context, teacherID string, start, end time.Time) ([]Entry, error)
	ListExternalSubstitutes(ctx context.Context, start, end time.Time) ([]Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	UpdateExternalPayStatus(ctx context.Context, id string, status ExternalPayStatus) (Entry, error)
}
