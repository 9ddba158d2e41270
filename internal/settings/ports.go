package settings

import (
	"context"

	"univadmin/internal/domain"
)

type Service interface {
	Get(ctx context.Context) (*Settings, error)
}

type Repository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListEmailTemplates(ctx context.Context) ([]domain.EmailTemplate, error)
}
