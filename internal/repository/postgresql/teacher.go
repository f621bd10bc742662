package postgresql

import (
	"context"
	"fmt"

	"github.com/filmsfather/woodiefilmcampus-payroll/internal/domain/teacher"
	"github.com/filmsfather/woodiefilmcampus-payroll/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type teacherRepository struct {
	db *database.DB
}

func NewTeacherRepository(db *database.DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) GetByID(ctx context.Context, id string) (teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, active, created_at, updated_at
		FROM teachers
		WHERE id = $1
	`

	var t teacher.Teacher
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Email, &t.Active, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return teacher.Teacher{}, teacher.ErrTeacherNotFound
		}
		return teacher.Teacher{}, fmt.Errorf("failed to get teacher: %w", err)
	}

	return t, nil
}

func (r *teacherRepository) ListActive(ctx context.Context) ([]teacher.Teacher, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, active, created_at, updated_at
		FROM teachers
		WHERE active = true
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active teachers: %w", err)
	}
	defer rows.Close()

	var teachers []teacher.Teacher
	for rows.Next() {
		var t teacher.Teacher
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Email, &t.Active, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan teacher: %w", err)
		}
		teachers = append(teachers, t)
	}

	return teachers, nil
}
