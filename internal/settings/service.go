package settings

import (
	"context"
)

type settingsService struct {
	repo Repository
	fees FeeSchedule
}

func NewService(repo Repository, fees FeeSchedule) Service {
	return &settingsService{repo: repo, fees: fees}
}

func (s *settingsService) Get(ctx context.Context) (*Settings, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	templates, err := s.repo.ListEmailTemplates(ctx)
	if err != nil {
		return nil, err
	}

	return &Settings{
		Categories: categories,
		Templates:  templates,
		Fees:       s.fees,
	}, nil
}
