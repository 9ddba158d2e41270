package earnings

import (
	"time"

	"go.uber.org/zap"
)

func NewModule(repo Repository, logger *zap.Logger, now func() time.Time) *Controller {
	svc := NewService(repo, now)
	return NewController(svc, logger)
}
