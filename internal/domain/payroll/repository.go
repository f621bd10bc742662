package payroll

import (
	"context"
	"time"
)

// Repository defines data access for payroll profiles, runs, items and
// acknowledgements. Write methods participate in the caller's transaction
// when one is carried on the context.
type Repository interface {
	// Profiles
	GetActiveProfile(ctx context.Context, teacherID string, asOf time.Time) (Profile, error)

	// Runs
	GetRunByID(ctx context.Context, id string) (Run, error)
	GetRunByTeacherPeriod(ctx context.Context, teacherID string, periodStart time.Time) (Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]Run, int64, error)
	UpsertRun(ctx context.Context, run Run) (Run, error)
	UpdateRunStatus(ctx context.Context, id string, status RunStatus) error

	// Run items: always replaced as a set, never patched
	ReplaceRunItems(ctx context.Context, runID string, items []RunItem) error
	ListRunItems(ctx context.Context, runID string) ([]RunItem, error)

	// Acknowledgements
	GetAcknowledgement(ctx context.Context, runID string) (Acknowledgement, error)
	ResetAcknowledgement(ctx context.Context, runID string, note *string, updatedBy string, requestedAt time.Time) (Acknowledgement, error)
	ConfirmAcknowledgement(ctx context.Context, runID string, note *string, updatedBy string, confirmedAt time.Time) (Acknowledgement, error)
}
