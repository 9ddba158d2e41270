package student

import (
	"net/http"

	"github.com/go-chi/chi/v5"
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

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	params := r.URL.Query()
	q := ListQuery{
		Search: params.Get("search"),
		Status: params.Get("status"),
		Level:  params.Get("level"),
	}
	if err := validation.Struct(q); err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	students, err := c.service.List(r.Context(), q)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	items := make([]StudentDTO, 0, len(students))
	for _, s := range students {
		items = append(items, toDTO(s))
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewListResponse(items), logger)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	s, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, toDTO(*s), logger)
}
