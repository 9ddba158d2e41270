package order

import (
	"time"

	"go.uber.org/zap"

	"univadmin/internal/order/controller"
	"univadmin/internal/order/usecase"
)

// NewModule wires the order pages. The repository may be the cached
// decorator; the use case does not care.
func NewModule(repo usecase.OrderRepository, logger *zap.Logger, now func() time.Time) *controller.OrderController {
	uc := usecase.NewOrderQueryUseCase(repo, logger, now)
	return controller.NewOrderController(uc, logger)
}
