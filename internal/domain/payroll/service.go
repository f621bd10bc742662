package payroll

import "context"

// Service is the manager- and worker-facing payroll engine surface.
type Service interface {
	// Preview computes a breakdown without persisting anything.
	Preview(ctx context.Context, req ComputeRequest) (BreakdownResponse, error)
	// SaveDraft recomputes and stores the run snapshot; the acknowledgement
	// is left untouched.
	SaveDraft(ctx context.Context, req ComputeRequest) (SavedRunResponse, error)
	// RequestConfirmation recomputes, stores, and resets the paired
	// acknowledgement to pending, then notifies the worker.
	RequestConfirmation(ctx context.Context, req ComputeRequest) (SavedRunResponse, error)
	// Confirm is the worker-side acknowledgement of a pending run.
	Confirm(ctx context.Context, runID string, note *string) (RunResponse, error)
	// MarkPaid finalizes a confirmed run.
	MarkPaid(ctx context.Context, runID string) error

	GetRun(ctx context.Context, id string) (RunResponse, error)
	ListRuns(ctx context.Context, filter RunFilter) (ListRunsResponse, error)
	ListRunsForTeacher(ctx context.Context, teacherID string, month *string) (ListRunsResponse, error)
}
