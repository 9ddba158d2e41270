package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"univadmin/internal/config"
	"univadmin/internal/domain"
	"univadmin/internal/dto"
	apperrors "univadmin/internal/errors"
)

const (
	FieldOrderID      = "orderId"
	FieldRefundAmount = "refundAmount"
	FieldRefundReason = "refundReason"
)

// Fields lists the form fields in the order errors are reported.
var Fields = []string{FieldOrderID, FieldRefundAmount, FieldRefundReason}

const (
	MsgSelectOrder    = "Please select an order"
	MsgOrderNotFound  = "Selected order does not exist"
	MsgAmountRequired = "Refund amount is required"
	MsgAmountInvalid  = "Refund amount must be a valid number"
	MsgAmountMinimum  = "Minimum refund amount is $0.01"
	MsgAmountExceeds  = "Refund amount cannot exceed order value"
	MsgReasonRequired = "Refund reason is required"
	MsgReasonTooShort = "Refund reason must be at least %d characters"
	MsgReasonTooLong  = "Refund reason must not exceed %d characters"
)

// minimumRefund is $0.01.
var minimumRefund = decimal.New(1, -2)

type OrderRepository interface {
	FindOrderByID(ctx context.Context, id string) (*domain.Order, error)
}

// Result is the outcome of checking a refund form. Order and Amount are only
// set when the corresponding field passed its own rules.
type Result struct {
	Errors    map[string]string
	CanSubmit bool
	Order     *domain.Order
	Amount    decimal.Decimal
}

func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// ValidationError converts the field errors, in form order, to a typed error.
func (r *Result) ValidationError() *apperrors.ValidationError {
	details := make([]apperrors.ValidationDetail, 0, len(r.Errors))
	for _, field := range Fields {
		if msg, ok := r.Errors[field]; ok {
			details = append(details, apperrors.ValidationDetail{Field: field, Message: msg})
		}
	}
	return apperrors.NewValidationError("refund request is invalid", details...)
}

type RefundValidator struct {
	orderRepo OrderRepository
	rules     config.RefundConfig
	logger    *zap.Logger
}

func NewRefundValidator(orderRepo OrderRepository, rules config.RefundConfig, logger *zap.Logger) *RefundValidator {
	return &RefundValidator{
		orderRepo: orderRepo,
		rules:     rules,
		logger:    logger,
	}
}

// Validate applies the field rules. Only the first failing rule per field is
// reported. A store failure other than a missing order is returned as err.
func (v *RefundValidator) Validate(ctx context.Context, req dto.RefundRequest) (*Result, error) {
	res := &Result{Errors: map[string]string{}}

	orderID := strings.TrimSpace(req.OrderID)
	if orderID == "" {
		res.Errors[FieldOrderID] = MsgSelectOrder
	} else {
		order, err := v.orderRepo.FindOrderByID(ctx, orderID)
		switch {
		case err == nil:
			res.Order = order
		case isNotFound(err):
			res.Errors[FieldOrderID] = MsgOrderNotFound
		default:
			return nil, apperrors.NewInternalError("failed to look up order", err)
		}
	}

	amountText := strings.TrimSpace(req.RefundAmount)
	if msg := v.checkAmount(amountText, res); msg != "" {
		res.Errors[FieldRefundAmount] = msg
	}

	reason := strings.TrimSpace(req.RefundReason)
	if msg := v.checkReason(reason); msg != "" {
		res.Errors[FieldRefundReason] = msg
	}

	res.CanSubmit = res.Valid() && orderID != "" && amountText != "" && reason != ""

	v.logger.Debug("refund form checked",
		zap.String("orderId", orderID),
		zap.Int("errorCount", len(res.Errors)),
		zap.Bool("canSubmit", res.CanSubmit),
	)

	return res, nil
}

func (v *RefundValidator) checkAmount(text string, res *Result) string {
	if text == "" {
		return MsgAmountRequired
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return MsgAmountInvalid
	}
	if amount.LessThan(minimumRefund) {
		return MsgAmountMinimum
	}
	if res.Order != nil && amount.GreaterThan(res.Order.Amount) {
		return MsgAmountExceeds
	}

	res.Amount = amount
	return ""
}

func (v *RefundValidator) checkReason(reason string) string {
	if reason == "" {
		return MsgReasonRequired
	}
	if !v.rules.StrictReason {
		return ""
	}

	n := utf8.RuneCountInString(reason)
	if n < v.rules.MinReasonLength {
		return fmt.Sprintf(MsgReasonTooShort, v.rules.MinReasonLength)
	}
	if n > v.rules.MaxReasonLength {
		return fmt.Sprintf(MsgReasonTooLong, v.rules.MaxReasonLength)
	}
	return ""
}

func isNotFound(err error) bool {
	_, ok := apperrors.IsNotFoundError(err)
	return ok
}
