package teacher

import "context"

// Service exposes the read-only teacher directory used by payroll screens.
type Service interface {
	ListActive(ctx context.Context) ([]TeacherResponse, error)
	GetByID(ctx context.Context, id string) (TeacherResponse, error)
}
