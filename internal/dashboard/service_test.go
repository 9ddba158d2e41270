package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"univadmin/internal/domain"
	"univadmin/internal/filter"
	"univadmin/internal/infrastructure/memory"
)

type mockRepository struct {
	students []domain.Student
	buyers   []domain.Buyer
	gigs     []domain.Gig
	orders   []domain.Order
	disputes []domain.Dispute
	payouts  []domain.Payout
	err      error
}

func (m *mockRepository) ListStudents(ctx context.Context) ([]domain.Student, error) {
	return m.students, m.err
}

func (m *mockRepository) ListBuyers(ctx context.Context) ([]domain.Buyer, error) {
	return m.buyers, m.err
}

func (m *mockRepository) ListGigs(ctx context.Context) ([]domain.Gig, error) {
	return m.gigs, m.err
}

func (m *mockRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return m.orders, m.err
}

func (m *mockRepository) ListDisputes(ctx context.Context) ([]domain.Dispute, error) {
	return m.disputes, m.err
}

func (m *mockRepository) ListPayouts(ctx context.Context) ([]domain.Payout, error) {
	return m.payouts, m.err
}

func TestService_Overview(t *testing.T) {
	repo := &mockRepository{
		students: []domain.Student{{ID: "1"}, {ID: "2"}},
		buyers:   []domain.Buyer{{ID: "1"}},
		gigs: []domain.Gig{
			{ID: "1", Status: domain.GigStatusPending},
			{ID: "2", Status: domain.GigStatusFlagged},
			{ID: "3", Status: domain.GigStatusPending},
		},
		orders: []domain.Order{
			{ID: "ORD-001", Status: domain.OrderStatusActive},
			{ID: "ORD-002", Status: domain.OrderStatusDisputed},
		},
		disputes: []domain.Dispute{
			{ID: "DSP-001", Status: domain.DisputeStatusOpen},
			{ID: "DSP-002", Status: domain.DisputeStatusResolved},
		},
		payouts: []domain.Payout{
			{ID: "PAY-001", Status: domain.PayoutStatusScheduled},
			{ID: "PAY-002", Status: domain.PayoutStatusScheduled},
			{ID: "PAY-003", Status: domain.PayoutStatusCompleted},
		},
	}

	o, err := NewService(repo).Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, o.Students)
	assert.Equal(t, 1, o.Buyers)
	assert.Equal(t, 3, o.TotalUsers())
	assert.Equal(t, 3, o.TotalGigs)
	assert.Equal(t, map[string]int{"pending": 2, "approved": 0, "rejected": 0, "flagged": 1}, o.GigsByStatus)
	assert.Equal(t, 2, o.TotalOrders)
	assert.Equal(t, 1, o.OrdersByStatus["active"])
	assert.Equal(t, 0, o.OrdersByStatus["completed"])
	assert.Len(t, o.OrdersByStatus, len(domain.OrderStatuses))
	assert.NotContains(t, o.OrdersByStatus, filter.All)
	assert.Equal(t, 1, o.OpenDisputes)
	assert.Equal(t, 2, o.ScheduledPayouts)
}

func TestService_Overview_Empty(t *testing.T) {
	o, err := NewService(&mockRepository{}).Overview(context.Background())
	require.NoError(t, err)

	assert.Zero(t, o.TotalUsers())
	assert.Equal(t, 0, o.GigsByStatus["approved"])
	assert.Zero(t, o.OpenDisputes)
}

func TestService_Overview_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")

	_, err := NewService(&mockRepository{err: repoErr}).Overview(context.Background())
	assert.ErrorIs(t, err, repoErr)
}

func TestService_Overview_MemoryStore(t *testing.T) {
	store, err := memory.NewStore()
	require.NoError(t, err)

	o, err := NewService(store).Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, o.TotalUsers())
	assert.Equal(t, 3, o.TotalGigs)
	assert.Equal(t, 3, o.TotalOrders)
	assert.Equal(t, map[string]int{"pending": 1, "approved": 1, "rejected": 0, "flagged": 1}, o.GigsByStatus)
	assert.NotContains(t, o.OrdersByStatus, filter.All)
}
