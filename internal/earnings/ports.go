package earnings

import (
	"context"

	"univadmin/internal/domain"
)

type Service interface {
	ListTransactions(ctx context.Context, q TransactionQuery) ([]domain.Transaction, error)
	ListPayouts(ctx context.Context, q PayoutQuery) ([]domain.Payout, error)
}

type Repository interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListPayouts(ctx context.Context) ([]domain.Payout, error)
}
