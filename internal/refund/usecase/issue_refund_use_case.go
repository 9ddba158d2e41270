package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"univadmin/internal/domain"
	"univadmin/internal/dto"
	"univadmin/internal/refund/service"
)

const (
	ConfirmationTitle    = "Refund issued successfully"
	ConfirmationRedirect = "/admin/orders"
)

type RefundValidator interface {
	Validate(ctx context.Context, req dto.RefundRequest) (*service.Result, error)
}

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// Confirmation is what the admin sees after a refund is accepted. Nothing
// is written anywhere; the order keeps its status and payment state.
type Confirmation struct {
	Title       string
	Description string
	Redirect    string
}

type IssueRefundUseCase struct {
	validator          RefundValidator
	orderRepo          OrderRepository
	logger             *zap.Logger
	highValueThreshold decimal.Decimal
}

func NewIssueRefundUseCase(
	validator RefundValidator,
	orderRepo OrderRepository,
	logger *zap.Logger,
	highValueThreshold decimal.Decimal,
) *IssueRefundUseCase {
	return &IssueRefundUseCase{
		validator:          validator,
		orderRepo:          orderRepo,
		logger:             logger,
		highValueThreshold: highValueThreshold,
	}
}

// RefundableOrders lists every order, sorted by id, for the order picker.
func (uc *IssueRefundUseCase) RefundableOrders(ctx context.Context) ([]dto.RefundableOrderDTO, error) {
	orders, err := uc.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RefundableOrderDTO, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.RefundableOrderDTO{
			ID:       o.ID,
			GigTitle: o.GigTitle,
			Buyer:    o.BuyerName,
			Student:  o.SellerName,
			Amount:   o.Amount,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})

	return items, nil
}

func (uc *IssueRefundUseCase) Validate(ctx context.Context, req dto.RefundRequest) (*service.Result, error) {
	return uc.validator.Validate(ctx, req)
}

// Submit re-validates the form and, when it passes, returns the confirmation.
// A failing form comes back as a *errors.ValidationError.
func (uc *IssueRefundUseCase) Submit(ctx context.Context, req dto.RefundRequest) (*Confirmation, error) {
	res, err := uc.validator.Validate(ctx, req)
	if err != nil {
		return nil, err
	}

	if !res.CanSubmit {
		uc.logger.Info("refund rejected", zap.String("orderId", req.OrderID), zap.Any("errors", res.Errors))
		return nil, res.ValidationError()
	}

	fields := []zap.Field{
		zap.String("orderId", res.Order.ID),
		zap.String("amount", res.Amount.String()),
		zap.String("orderAmount", res.Order.Amount.String()),
	}
	if !uc.highValueThreshold.IsZero() && res.Order.Amount.GreaterThanOrEqual(uc.highValueThreshold) {
		uc.logger.Warn("refund confirmed on high value order", fields...)
	} else {
		uc.logger.Info("refund confirmed", fields...)
	}

	return &Confirmation{
		Title:       ConfirmationTitle,
		Description: fmt.Sprintf("$%s refund has been processed for order %s", strings.TrimSpace(req.RefundAmount), res.Order.ID),
		Redirect:    ConfirmationRedirect,
	}, nil
}
