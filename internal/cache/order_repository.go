package cache

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"univadmin/internal/domain"
)

const orderKeyPrefix = "univadmin:order:"

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	FindOrderByID(ctx context.Context, id string) (*domain.Order, error)
}

// CachedOrderRepository puts a read-through cache in front of order lookups
// by id. Cache failures are logged and the lookup falls back to the wrapped
// repository. Lists always go to the wrapped repository.
type CachedOrderRepository struct {
	next   OrderRepository
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedOrderRepository(next OrderRepository, store Store, ttl time.Duration, logger *zap.Logger) *CachedOrderRepository {
	return &CachedOrderRepository{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *CachedOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.next.ListOrders(ctx)
}

func (r *CachedOrderRepository) FindOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	key := orderKeyPrefix + id

	data, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.logger.Warn("order cache read failed", zap.String("orderId", id), zap.Error(err))
	}
	if ok {
		var order domain.Order
		if err := json.Unmarshal(data, &order); err == nil {
			return &order, nil
		}
		r.logger.Warn("discarding undecodable cached order", zap.String("orderId", id))
	}

	order, err := r.next.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(order)
	if err != nil {
		r.logger.Warn("encoding order for cache", zap.String("orderId", id), zap.Error(err))
		return order, nil
	}
	if err := r.store.Set(ctx, key, payload, r.ttl); err != nil {
		r.logger.Warn("order cache write failed", zap.String("orderId", id), zap.Error(err))
	}

	return order, nil
}
