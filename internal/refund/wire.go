package refund

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"univadmin/internal/config"
	"univadmin/internal/domain"
	"univadmin/internal/refund/controller"
	"univadmin/internal/refund/service"
	"univadmin/internal/refund/usecase"
)

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	FindOrderByID(ctx context.Context, id string) (*domain.Order, error)
}

func NewModule(orderRepo OrderRepository, cfg *config.Config, logger *zap.Logger) (*controller.RefundController, error) {
	threshold, err := decimal.NewFromString(cfg.Fees.HighValueThreshold)
	if err != nil {
		return nil, fmt.Errorf("parsing high value order threshold: %w", err)
	}

	validator := service.NewRefundValidator(orderRepo, cfg.Refund, logger)
	uc := usecase.NewIssueRefundUseCase(validator, orderRepo, logger, threshold)
	return controller.NewRefundController(uc, logger), nil
}
