package dispute

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"univadmin/internal/domain"
)

type mockRepository struct {
	ListDisputesFunc    func(ctx context.Context) ([]domain.Dispute, error)
	FindDisputeByIDFunc func(ctx context.Context, id string) (*domain.Dispute, error)
}

func (m *mockRepository) ListDisputes(ctx context.Context) ([]domain.Dispute, error) {
	return m.ListDisputesFunc(ctx)
}

func (m *mockRepository) FindDisputeByID(ctx context.Context, id string) (*domain.Dispute, error) {
	return m.FindDisputeByIDFunc(ctx, id)
}

func sampleDisputes() []domain.Dispute {
	return []domain.Dispute{
		{ID: "DSP-001", OrderID: "ORD-025", GigTitle: "Website Development Project", BuyerName: "John Davis", SellerName: "Sarah Wilson",
			Status: domain.DisputeStatusOpen, Priority: domain.DisputePriorityHigh},
		{ID: "DSP-002", OrderID: "ORD-018", GigTitle: "Logo Design Package", BuyerName: "Mike Johnson", SellerName: "Emma Chen",
			Status: domain.DisputeStatusInReview, Priority: domain.DisputePriorityMedium,
			AdminNotes: []string{"Requested additional evidence from buyer", "Contacted seller for response"}},
		{ID: "DSP-003", OrderID: "ORD-033", GigTitle: "Content Writing Services", BuyerName: "Lisa Rodriguez", SellerName: "Alex Thompson",
			Status: domain.DisputeStatusResolved, Priority: domain.DisputePriorityLow},
	}
}

func newListRepo() *mockRepository {
	return &mockRepository{
		ListDisputesFunc: func(ctx context.Context) ([]domain.Dispute, error) {
			return sampleDisputes(), nil
		},
	}
}

func TestService_List(t *testing.T) {
	tests := []struct {
		name  string
		query ListQuery
		want  []string
	}{
		{name: "everything", query: ListQuery{Status: "all", Priority: "all"}, want: []string{"DSP-001", "DSP-002", "DSP-003"}},
		{name: "search dispute id", query: ListQuery{Search: "dsp-003"}, want: []string{"DSP-003"}},
		{name: "search order id", query: ListQuery{Search: "ORD-018"}, want: []string{"DSP-002"}},
		{name: "search buyer", query: ListQuery{Search: "davis"}, want: []string{"DSP-001"}},
		{name: "search seller", query: ListQuery{Search: "thompson"}, want: []string{"DSP-003"}},
		{name: "status", query: ListQuery{Status: "in_review"}, want: []string{"DSP-002"}},
		{name: "priority", query: ListQuery{Priority: "high"}, want: []string{"DSP-001"}},
		{name: "escalated none", query: ListQuery{Status: "escalated"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewService(newListRepo()).List(context.Background(), tt.query)
			require.NoError(t, err)

			got := make([]string, 0, len(result.Disputes))
			for _, d := range result.Disputes {
				got = append(got, d.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_List_CountsCoverAllDisputes(t *testing.T) {
	result, err := NewService(newListRepo()).List(context.Background(), ListQuery{Priority: "high"})
	require.NoError(t, err)

	assert.Len(t, result.Disputes, 1)
	assert.Equal(t, 1, result.Counts[domain.DisputeStatusOpen])
	assert.Equal(t, 1, result.Counts[domain.DisputeStatusInReview])
	assert.Equal(t, 1, result.Counts[domain.DisputeStatusResolved])
	assert.Equal(t, 0, result.Counts[domain.DisputeStatusEscalated])
}
