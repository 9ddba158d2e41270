package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"univadmin/internal/domain"
	"univadmin/internal/dto"
	"univadmin/internal/filter"
)

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	FindOrderByID(ctx context.Context, id string) (*domain.Order, error)
}

type OrderQueryUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrderQueryUseCase(orderRepo OrderRepository, logger *zap.Logger, now func() time.Time) *OrderQueryUseCase {
	if now == nil {
		now = time.Now
	}
	return &OrderQueryUseCase{
		orderRepo: orderRepo,
		logger:    logger,
		now:       now,
	}
}

// ListOrders applies the search over id, gig title, buyer and seller, ANDed
// with the status and order date filters.
func (uc *OrderQueryUseCase) ListOrders(ctx context.Context, q dto.ListOrdersQuery) ([]dto.OrderDTO, error) {
	orders, err := uc.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	dateRange := filter.DateRange(q.Date)
	matched := filter.Apply(orders, func(o domain.Order) bool {
		return filter.MatchesSearch(q.Search, o.ID, o.GigTitle, o.BuyerName, o.SellerName) &&
			filter.MatchesExact(q.Status, o.Status) &&
			dateRange.Contains(o.OrderDate, now)
	})

	uc.logger.Debug("orders listed", zap.Int("total", len(orders)), zap.Int("matched", len(matched)))

	items := make([]dto.OrderDTO, 0, len(matched))
	for _, o := range matched {
		items = append(items, toOrderDTO(o))
	}
	return items, nil
}

func (uc *OrderQueryUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderDetailsDTO, error) {
	order, err := uc.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.OrderDetailsDTO{
		OrderDTO: toOrderDTO(*order),
		Milestones: dto.MilestonesDTO{
			Total:     order.MilestonesTotal,
			Completed: order.MilestonesCompleted,
			Progress:  order.Progress(),
		},
	}, nil
}

func toOrderDTO(o domain.Order) dto.OrderDTO {
	return dto.OrderDTO{
		ID:            o.ID,
		GigTitle:      o.GigTitle,
		Buyer:         o.BuyerName,
		Seller:        o.SellerName,
		Status:        string(o.Status),
		Amount:        o.Amount,
		Package:       o.Package,
		PaymentStatus: string(o.PaymentStatus),
		OrderDate:     o.OrderDate,
		DeliveryDate:  o.DeliveryDate,
		HasDispute:    o.HasDispute,
		Messages:      o.Messages,
	}
}
