package buyer

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"univadmin/internal/commons"
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

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	params := r.URL.Query()
	q := ListQuery{
		Search:   params.Get("search"),
		Status:   params.Get("status"),
		Spending: params.Get("spending"),
	}
	if err := validation.Struct(q); err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	result, err := c.service.List(r.Context(), q)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	items := make([]BuyerDTO, 0, len(result.Buyers))
	for _, b := range result.Buyers {
		items = append(items, toDTO(b))
	}

	commons.WriteJSON(w, http.StatusOK, ListResponse{
		Items: items,
		Total: len(items),
		Summary: SummaryDTO{
			TotalBuyers:  result.TotalBuyers,
			ActiveBuyers: result.ActiveBuyers,
			TotalSpent:   result.TotalSpent,
		},
	}, logger)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	b, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, toDTO(*b), logger)
}
