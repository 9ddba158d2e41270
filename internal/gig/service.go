package gig

import (
	"context"

	"univadmin/internal/domain"
	"univadmin/internal/filter"
)

type gigService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &gigService{repo: repo}
}

func (s *gigService) List(ctx context.Context, q ListQuery) ([]domain.Gig, error) {
	gigs, err := s.repo.ListGigs(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Apply(gigs, func(g domain.Gig) bool {
		return filter.MatchesSearch(q.Search, g.Title, g.SellerName) &&
			filter.MatchesExact(q.Status, g.Status) &&
			filter.MatchesExact(q.Category, g.Category)
	}), nil
}

func (s *gigService) Get(ctx context.Context, id string) (*domain.Gig, error) {
	return s.repo.FindGigByID(ctx, id)
}
