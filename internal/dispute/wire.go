package dispute

import (
	"go.uber.org/zap"
)

func NewModule(repo Repository, logger *zap.Logger) *Controller {
	svc := NewService(repo)
	return NewController(svc, logger)
}
