package teacher

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Teacher, error)
	ListActive(ctx context.Context) ([]Teacher, error)
}
