package student

import (
	"context"

	"univadmin/internal/domain"
)

type Service interface {
	List(ctx context.Context, q ListQuery) ([]domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
}

type Repository interface {
	ListStudents(ctx context.Context) ([]domain.Student, error)
	FindStudentByID(ctx context.Context, id string) (*domain.Student, error)
}
