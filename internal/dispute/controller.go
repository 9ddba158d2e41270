package dispute

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"univadmin/internal/commons"
	"univadmin/internal/domain"
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
		Priority: params.Get("priority"),
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

	items := make([]DisputeDTO, 0, len(result.Disputes))
	for _, d := range result.Disputes {
		items = append(items, toDTO(d))
	}

	commons.WriteJSON(w, http.StatusOK, ListResponse{
		Items: items,
		Total: len(items),
		Counts: CountsDTO{
			Open:      result.Counts[domain.DisputeStatusOpen],
			InReview:  result.Counts[domain.DisputeStatusInReview],
			Resolved:  result.Counts[domain.DisputeStatusResolved],
			Escalated: result.Counts[domain.DisputeStatusEscalated],
		},
	}, logger)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	d, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, toDetailsDTO(*d), logger)
}
