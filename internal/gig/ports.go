package gig

import (
	"context"

	"univadmin/internal/domain"
)

type Service interface {
	List(ctx context.Context, q ListQuery) ([]domain.Gig, error)
	Get(ctx context.Context, id string) (*domain.Gig, error)
}

type Repository interface {
	ListGigs(ctx context.Context) ([]domain.Gig, error)
	FindGigByID(ctx context.Context, id string) (*domain.Gig, error)
}
