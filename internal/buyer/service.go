package buyer

import (
	"context"

	"github.com/shopspring/decimal"

	"univadmin/internal/domain"
	"univadmin/internal/filter"
)

type buyerService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &buyerService{repo: repo}
}

func (s *buyerService) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	buyers, err := s.repo.ListBuyers(ctx)
	if err != nil {
		return nil, err
	}

	result := &ListResult{
		Buyers: filter.Apply(buyers, func(b domain.Buyer) bool {
			return filter.MatchesSearch(q.Search, b.Name, b.Email) &&
				filter.MatchesExact(q.Status, b.Status) &&
				filter.MatchesExact(q.Spending, b.SpendingTier())
		}),
		TotalBuyers: len(buyers),
		TotalSpent:  decimal.Zero,
	}

	for _, b := range buyers {
		if b.Status == domain.AccountStatusActive {
			result.ActiveBuyers++
		}
		result.TotalSpent = result.TotalSpent.Add(b.TotalSpent)
	}

	return result, nil
}

func (s *buyerService) Get(ctx context.Context, id string) (*domain.Buyer, error) {
	return s.repo.FindBuyerByID(ctx, id)
}
