package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"univadmin/internal/config"
	"univadmin/internal/domain"
)

type mockRepository struct {
	ListCategoriesFunc     func(ctx context.Context) ([]domain.Category, error)
	ListEmailTemplatesFunc func(ctx context.Context) ([]domain.EmailTemplate, error)
}

func (m *mockRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return m.ListCategoriesFunc(ctx)
}

func (m *mockRepository) ListEmailTemplates(ctx context.Context) ([]domain.EmailTemplate, error) {
	return m.ListEmailTemplatesFunc(ctx)
}

func defaultFees() config.FeeConfig {
	return config.FeeConfig{
		CommissionPercent:     "10",
		ProcessingPercent:     "2.9",
		FixedFee:              "0.30",
		WithdrawalFee:         "2.00",
		SessionTimeoutMinutes: 30,
		HighValueThreshold:    "500",
	}
}

func newSettingsRepo() *mockRepository {
	return &mockRepository{
		ListCategoriesFunc: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{
				{ID: "1", Name: "Web Development", Subcategories: []string{"Frontend Development", "WordPress"}, IsActive: true},
				{ID: "4", Name: "Digital Marketing", IsActive: false},
			}, nil
		},
		ListEmailTemplatesFunc: func(ctx context.Context) ([]domain.EmailTemplate, error) {
			return []domain.EmailTemplate{
				{ID: "1", Name: "Welcome New User", Subject: "Welcome to Univ Jobs!", Type: domain.TemplateTypeWelcome,
					LastModified: time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
}

func TestNewFeeSchedule(t *testing.T) {
	fs, err := NewFeeSchedule(defaultFees())
	require.NoError(t, err)

	assert.True(t, fs.CommissionPercent.Equal(decimal.NewFromInt(10)))
	assert.True(t, fs.ProcessingPercent.Equal(decimal.RequireFromString("2.9")))
	assert.True(t, fs.FixedFee.Equal(decimal.RequireFromString("0.3")))
	assert.True(t, fs.WithdrawalFee.Equal(decimal.NewFromInt(2)))
	assert.True(t, fs.HighValueThreshold.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 30, fs.SessionTimeoutMinutes)
}

func TestNewFeeSchedule_Invalid(t *testing.T) {
	fees := defaultFees()
	fees.WithdrawalFee = "two dollars"

	_, err := NewFeeSchedule(fees)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "withdrawal fee")
}

func TestService_Get(t *testing.T) {
	fs, err := NewFeeSchedule(defaultFees())
	require.NoError(t, err)

	s, err := NewService(newSettingsRepo(), fs).Get(context.Background())
	require.NoError(t, err)

	assert.Len(t, s.Categories, 2)
	assert.Len(t, s.Templates, 1)
	assert.Equal(t, fs, s.Fees)
}

func TestService_Get_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := newSettingsRepo()
	repo.ListEmailTemplatesFunc = func(ctx context.Context) ([]domain.EmailTemplate, error) {
		return nil, repoErr
	}

	_, err := NewService(repo, FeeSchedule{}).Get(context.Background())
	assert.ErrorIs(t, err, repoErr)
}
