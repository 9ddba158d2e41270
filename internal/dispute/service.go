package dispute

import (
	"context"

	"univadmin/internal/domain"
	"univadmin/internal/filter"
)

type disputeService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &disputeService{repo: repo}
}

func (s *disputeService) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	disputes, err := s.repo.ListDisputes(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Disputes: filter.Apply(disputes, func(d domain.Dispute) bool {
			return filter.MatchesSearch(q.Search, d.ID, d.OrderID, d.GigTitle, d.BuyerName, d.SellerName) &&
				filter.MatchesExact(q.Status, d.Status) &&
				filter.MatchesExact(q.Priority, d.Priority)
		}),
		Counts: filter.CountBy(disputes, func(d domain.Dispute) domain.DisputeStatus { return d.Status }),
	}, nil
}

func (s *disputeService) Get(ctx context.Context, id string) (*domain.Dispute, error) {
	return s.repo.FindDisputeByID(ctx, id)
}
