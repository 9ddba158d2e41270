package profile

import (
	"context"
	"slices"

	"univadmin/internal/domain"
)

type profileService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &profileService{repo: repo}
}

// Get lists the current session first, then the others by last activity,
// newest first.
func (s *profileService) Get(ctx context.Context) (*domain.AdminProfile, error) {
	p, err := s.repo.GetAdminProfile(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(p.Sessions, func(a, b domain.AdminSession) int {
		if a.Current != b.Current {
			if a.Current {
				return -1
			}
			return 1
		}
		return b.LastActive.Compare(a.LastActive)
	})

	return p, nil
}
