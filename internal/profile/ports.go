package profile

import (
	"context"

	"univadmin/internal/domain"
)

type Service interface {
	Get(ctx context.Context) (*domain.AdminProfile, error)
}

type Repository interface {
	GetAdminProfile(ctx context.Context) (*domain.AdminProfile, error)
}
