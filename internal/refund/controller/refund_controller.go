package controller

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"univadmin/internal/commons"
	"univadmin/internal/dto"
	apperrors "univadmin/internal/errors"
	"univadmin/internal/refund/service"
	"univadmin/internal/refund/usecase"
)

type IssueRefundUseCase interface {
	RefundableOrders(ctx context.Context) ([]dto.RefundableOrderDTO, error)
	Validate(ctx context.Context, req dto.RefundRequest) (*service.Result, error)
	Submit(ctx context.Context, req dto.RefundRequest) (*usecase.Confirmation, error)
}

type RefundController struct {
	useCase IssueRefundUseCase
	logger  *zap.Logger
}

func NewRefundController(useCase IssueRefundUseCase, logger *zap.Logger) *RefundController {
	return &RefundController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *RefundController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	items, err := c.useCase.RefundableOrders(r.Context())
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewListResponse(items), logger)
}

// Validate backs the live form. Field problems are part of a 200 answer,
// never an error status.
func (c *RefundController) Validate(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteInvalidBody(w, traceID, logger)
		return
	}

	res, err := c.useCase.Validate(r.Context(), req)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.RefundValidationResponse{
		Valid:     res.Valid(),
		CanSubmit: res.CanSubmit,
		Errors:    res.Errors,
	}, logger)
}

func (c *RefundController) Submit(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteInvalidBody(w, traceID, logger)
		return
	}

	confirmation, err := c.useCase.Submit(r.Context(), req)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			commons.WriteValidationError(w, traceID, http.StatusUnprocessableEntity, ve, logger)
			return
		}
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.RefundConfirmationResponse{
		TraceID:     traceID,
		Title:       confirmation.Title,
		Description: confirmation.Description,
		Redirect:    confirmation.Redirect,
	}, logger)
}
