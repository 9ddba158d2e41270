package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"univadmin/internal/domain"
	"univadmin/internal/infrastructure/memory"
)

type mockRepository struct {
	GetAdminProfileFunc func(ctx context.Context) (*domain.AdminProfile, error)
}

func (m *mockRepository) GetAdminProfile(ctx context.Context) (*domain.AdminProfile, error) {
	return m.GetAdminProfileFunc(ctx)
}

func at(hour int) time.Time {
	return time.Date(2024, 8, 30, hour, 0, 0, 0, time.UTC)
}

func newProfileRepo() *mockRepository {
	return &mockRepository{
		GetAdminProfileFunc: func(ctx context.Context) (*domain.AdminProfile, error) {
			return &domain.AdminProfile{
				Name:             "Admin User",
				Email:            "admin@univjobs.com",
				Role:             "Super Admin",
				LastLogin:        at(14),
				TwoFactorEnabled: true,
				Sessions: []domain.AdminSession{
					{ID: "3", Device: "Firefox on Windows", LastActive: at(2)},
					{ID: "2", Device: "Safari on iPhone", LastActive: at(12)},
					{ID: "1", Device: "Chrome on MacBook Pro", LastActive: at(14), Current: true},
				},
			}, nil
		},
	}
}

func sessionIDs(p *domain.AdminProfile) []string {
	ids := make([]string, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestService_Get_OrdersSessions(t *testing.T) {
	p, err := NewService(newProfileRepo()).Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Admin User", p.Name)
	assert.Equal(t, []string{"1", "2", "3"}, sessionIDs(p))
}

func TestService_Get_CurrentFirstEvenWhenOlder(t *testing.T) {
	repo := &mockRepository{
		GetAdminProfileFunc: func(ctx context.Context) (*domain.AdminProfile, error) {
			return &domain.AdminProfile{Sessions: []domain.AdminSession{
				{ID: "a", LastActive: at(10)},
				{ID: "b", LastActive: at(9), Current: true},
			}}, nil
		},
	}

	p, err := NewService(repo).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, sessionIDs(p))
}

func TestService_Get_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &mockRepository{
		GetAdminProfileFunc: func(ctx context.Context) (*domain.AdminProfile, error) {
			return nil, repoErr
		},
	}

	p, err := NewService(repo).Get(context.Background())
	assert.Nil(t, p)
	assert.ErrorIs(t, err, repoErr)
}

func TestService_Get_MemoryStore(t *testing.T) {
	store, err := memory.NewStore()
	require.NoError(t, err)

	p, err := NewService(store).Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "admin@univjobs.com", p.Email)
	assert.Equal(t, []string{"1", "2", "3"}, sessionIDs(p))
}
