package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"univadmin/internal/commons"
	"univadmin/internal/dto"
	"univadmin/internal/validation"
)

type OrderQueryUseCase interface {
	ListOrders(ctx context.Context, q dto.ListOrdersQuery) ([]dto.OrderDTO, error)
	GetOrder(ctx context.Context, id string) (*dto.OrderDetailsDTO, error)
}

type OrderController struct {
	useCase OrderQueryUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderQueryUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	params := r.URL.Query()
	q := dto.ListOrdersQuery{
		Search: params.Get("search"),
		Status: params.Get("status"),
		Date:   params.Get("date"),
	}
	if err := validation.Struct(q); err != nil {
		logger.Warn("invalid order list query", zap.Error(err))
		commons.HandleError(w, traceID, err, logger)
		return
	}

	items, err := c.useCase.ListOrders(r.Context(), q)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewListResponse(items), logger)
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "id")
	details, err := c.useCase.GetOrder(r.Context(), orderID)
	if err != nil {
		commons.HandleError(w, traceID, err, logger.With(zap.String("orderId", orderID)))
		return
	}

	commons.WriteJSON(w, http.StatusOK, details, logger)
}
