package student

import (
	"context"

	"univadmin/internal/domain"
	"univadmin/internal/filter"
)

type studentService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &studentService{repo: repo}
}

func (s *studentService) List(ctx context.Context, q ListQuery) ([]domain.Student, error) {
	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Apply(students, func(st domain.Student) bool {
		return filter.MatchesSearch(q.Search, st.Name, st.Email) &&
			filter.MatchesExact(q.Status, st.Status) &&
			filter.MatchesExact(q.Level, st.ProfileLevel)
	}), nil
}

func (s *studentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.FindStudentByID(ctx, id)
}
