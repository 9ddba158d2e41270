package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"univadmin/internal/config"
	"univadmin/internal/domain"
	"univadmin/internal/infrastructure/memory"
)

var (
	_ Repository = (*memory.Store)(nil)
	_ Repository = (*mysqlRecords)(nil)
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreDriverMemory}}

	repo, closeFn, err := Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	defer closeFn()

	orders, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, orders)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}

	_, _, err := Open(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown store driver "sqlite"`)
}

type stubOrders struct {
	calls int
}

func (s *stubOrders) ListOrders(ctx context.Context) ([]domain.Order, error) {
	s.calls++
	return []domain.Order{{ID: "ORD-900"}}, nil
}

func (s *stubOrders) FindOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	s.calls++
	return &domain.Order{ID: id}, nil
}

func TestWithOrders(t *testing.T) {
	store, err := memory.NewStore()
	require.NoError(t, err)

	orders := &stubOrders{}
	repo := WithOrders(store, orders)
	ctx := context.Background()

	list, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORD-900", list[0].ID)

	o, err := repo.FindOrderByID(ctx, "ORD-777")
	require.NoError(t, err)
	assert.Equal(t, "ORD-777", o.ID)
	assert.Equal(t, 2, orders.calls)

	students, err := repo.ListStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 5)
}
