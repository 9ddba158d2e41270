package buyer

import (
	"context"

	"github.com/shopspring/decimal"

	"univadmin/internal/domain"
)

type Service interface {
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	Get(ctx context.Context, id string) (*domain.Buyer, error)
}

type Repository interface {
	ListBuyers(ctx context.Context) ([]domain.Buyer, error)
	FindBuyerByID(ctx context.Context, id string) (*domain.Buyer, error)
}

// ListResult carries the filtered buyers plus summary figures computed over
// every buyer regardless of filters.
type ListResult struct {
	Buyers       []domain.Buyer
	TotalBuyers  int
	ActiveBuyers int
	TotalSpent   decimal.Decimal
}
