package dispute

import (
	"context"

	"univadmin/internal/domain"
)

type Service interface {
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	Get(ctx context.Context, id string) (*domain.Dispute, error)
}

type Repository interface {
	ListDisputes(ctx context.Context) ([]domain.Dispute, error)
	FindDisputeByID(ctx context.Context, id string) (*domain.Dispute, error)
}

// ListResult holds the filtered disputes and the per-status counts over the
// whole set, which back the summary cards.
type ListResult struct {
	Disputes []domain.Dispute
	Counts   map[domain.DisputeStatus]int
}
