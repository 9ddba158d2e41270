package earnings

import (
	"net/http"

	"go.uber.org/zap"

	"univadmin/internal/commons"
	"univadmin/internal/dto"
	"univadmin/internal/validation"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	params := r.URL.Query()
	q := TransactionQuery{
		Search: params.Get("search"),
		Type:   params.Get("type"),
		Status: params.Get("status"),
		Date:   params.Get("date"),
	}
	if err := validation.Struct(q); err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	transactions, err := c.service.ListTransactions(r.Context(), q)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	items := make([]TransactionDTO, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, toTransactionDTO(t))
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewListResponse(items), logger)
}

func (c *Controller) HandleListPayouts(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	params := r.URL.Query()
	q := PayoutQuery{
		Search: params.Get("search"),
		Status: params.Get("status"),
	}
	if err := validation.Struct(q); err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	payouts, err := c.service.ListPayouts(r.Context(), q)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	items := make([]PayoutDTO, 0, len(payouts))
	for _, p := range payouts {
		items = append(items, toPayoutDTO(p))
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewListResponse(items), logger)
}
