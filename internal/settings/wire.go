package settings

import (
	"go.uber.org/zap"

	"univadmin/internal/config"
)

// NewModule fails when the configured fee schedule does not parse.
func NewModule(repo Repository, fees config.FeeConfig, logger *zap.Logger) (*Controller, error) {
	schedule, err := NewFeeSchedule(fees)
	if err != nil {
		return nil, err
	}

	svc := NewService(repo, schedule)
	return NewController(svc, logger), nil
}
