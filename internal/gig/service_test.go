package gig

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"univadmin/internal/domain"
)

type mockRepository struct {
	ListGigsFunc    func(ctx context.Context) ([]domain.Gig, error)
	FindGigByIDFunc func(ctx context.Context, id string) (*domain.Gig, error)
}

func (m *mockRepository) ListGigs(ctx context.Context) ([]domain.Gig, error) {
	return m.ListGigsFunc(ctx)
}

func (m *mockRepository) FindGigByID(ctx context.Context, id string) (*domain.Gig, error) {
	return m.FindGigByIDFunc(ctx, id)
}

func sampleGigs() []domain.Gig {
	return []domain.Gig{
		{ID: "1", Title: "I will create a modern website design", Category: "Web Design", SellerName: "Sarah Johnson", SellerRating: 4.8, Status: domain.GigStatusPending,
			Packages: domain.GigPackages{Basic: decimal.NewFromInt(50), Standard: decimal.NewFromInt(100), Premium: decimal.NewFromInt(200)}},
		{ID: "2", Title: "I will write compelling marketing copy", Category: "Content Writing", SellerName: "Mike Chen", SellerRating: 4.9, Status: domain.GigStatusFlagged,
			Flags: []string{"Potential copyright violation"}, Reports: 2},
		{ID: "3", Title: "I will create social media graphics", Category: "Graphic Design", SellerName: "Emma Wilson", SellerRating: 4.7, Status: domain.GigStatusApproved},
	}
}

func newListRepo() *mockRepository {
	return &mockRepository{
		ListGigsFunc: func(ctx context.Context) ([]domain.Gig, error) {
			return sampleGigs(), nil
		},
	}
}

func TestService_List(t *testing.T) {
	tests := []struct {
		name  string
		query ListQuery
		want  []string
	}{
		{name: "everything", query: ListQuery{Status: "all", Category: "all"}, want: []string{"1", "2", "3"}},
		{name: "search title", query: ListQuery{Search: "CREATE"}, want: []string{"1", "3"}},
		{name: "search seller", query: ListQuery{Search: "mike"}, want: []string{"2"}},
		{name: "flagged", query: ListQuery{Status: "flagged"}, want: []string{"2"}},
		{name: "category", query: ListQuery{Category: "Graphic Design"}, want: []string{"3"}},
		{name: "category is exact", query: ListQuery{Category: "graphic design"}, want: []string{}},
		{name: "search and status", query: ListQuery{Search: "create", Status: "approved"}, want: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gigs, err := NewService(newListRepo()).List(context.Background(), tt.query)
			require.NoError(t, err)

			got := make([]string, 0, len(gigs))
			for _, g := range gigs {
				got = append(got, g.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
