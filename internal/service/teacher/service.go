package teacher

import (
	"context"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/teacher"
)

type service struct {
	repo teacher.Repository
}

func NewTeacherService(repo teacher.Repository) teacher.Service {
	return &service{repo: repo}
}

func (s *service) ListActive(ctx context.Context) ([]teacher.TeacherResponse, error) {
	teachers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]teacher.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		responses = append(responses, toResponse(t))
	}

	return responses, nil
}

func (s *service) GetByID(ctx context.Context, id string) (teacher.TeacherResponse, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	return toResponse(t), nil
}

func toResponse(t teacher.Teacher) teacher.TeacherResponse {
	return teacher.TeacherResponse{
		ID:     t.ID,
		Name:   t.Name,
		Email:  t.Email,
		Active: t.Active,
	}
}
