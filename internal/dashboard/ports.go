package dashboard

import (
	"context"

	"univadmin/internal/domain"
)

type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

type Repository interface {
	ListStudents(ctx context.Context) ([]domain.Student, error)
	ListBuyers(ctx context.Context) ([]domain.Buyer, error)
	ListGigs(ctx context.Context) ([]domain.Gig, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListDisputes(ctx context.Context) ([]domain.Dispute, error)
	ListPayouts(ctx context.Context) ([]domain.Payout, error)
}
