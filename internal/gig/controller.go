package gig

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
		Search:   params.Get("search"),
		Status:   params.Get("status"),
		Category: params.Get("category"),
	}
	if err := validation.Struct(q); err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	gigs, err := c.service.List(r.Context(), q)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	items := make([]GigDTO, 0, len(gigs))
	for _, g := range gigs {
		items = append(items, toDTO(g))
	}

	commons.WriteJSON(w, http.StatusOK, dto.NewListResponse(items), logger)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	traceID := commons.NewTraceID()
	logger := c.logger.With(zap.String("traceId", traceID))

	g, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, toDTO(*g), logger)
}
