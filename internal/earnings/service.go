package earnings

import (
	"context"
	"time"

	"univadmin/internal/domain"
	"univadmin/internal/filter"
)

type earningsService struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &earningsService{repo: repo, now: now}
}

func (s *earningsService) ListTransactions(ctx context.Context, q TransactionQuery) ([]domain.Transaction, error) {
	transactions, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dateRange := filter.DateRange(q.Date)
	return filter.Apply(transactions, func(t domain.Transaction) bool {
		return filter.MatchesSearch(q.Search, t.ID, t.Description, t.Party) &&
			filter.MatchesExact(q.Type, t.Type) &&
			filter.MatchesExact(q.Status, t.Status) &&
			dateRange.Contains(t.Date, now)
	}), nil
}

func (s *earningsService) ListPayouts(ctx context.Context, q PayoutQuery) ([]domain.Payout, error) {
	payouts, err := s.repo.ListPayouts(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Apply(payouts, func(p domain.Payout) bool {
		return filter.MatchesSearch(q.Search, p.ID, p.Seller) &&
			filter.MatchesExact(q.Status, p.Status)
	}), nil
}
