package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"univadmin/internal/dto"
	apperrors "univadmin/internal/errors"
)

type mockOrderQueryUseCase struct {
	ListOrdersFunc func(ctx context.Context, q dto.ListOrdersQuery) ([]dto.OrderDTO, error)
	GetOrderFunc   func(ctx context.Context, id string) (*dto.OrderDetailsDTO, error)
}

func (m *mockOrderQueryUseCase) ListOrders(ctx context.Context, q dto.ListOrdersQuery) ([]dto.OrderDTO, error) {
	return m.ListOrdersFunc(ctx, q)
}

func (m *mockOrderQueryUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderDetailsDTO, error) {
	return m.GetOrderFunc(ctx, id)
}

func newTestRouter(uc OrderQueryUseCase) http.Handler {
	ctrl := NewOrderController(uc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/admin/orders", ctrl.ListOrders)
	r.Get("/admin/orders/{id}", ctrl.GetOrder)
	return r
}

func TestListOrders_PassesQuery(t *testing.T) {
	var captured dto.ListOrdersQuery
	uc := &mockOrderQueryUseCase{
		ListOrdersFunc: func(ctx context.Context, q dto.ListOrdersQuery) ([]dto.OrderDTO, error) {
			captured = q
			return []dto.OrderDTO{{ID: "ORD-002", Status: "disputed"}}, nil
		},
	}

	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders?search=mike&status=disputed&date=month", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.ListOrdersQuery{Search: "mike", Status: "disputed", Date: "month"}, captured)

	var resp dto.ListResponse[dto.OrderDTO]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "ORD-002", resp.Items[0].ID)
}

func TestListOrders_InvalidFilters(t *testing.T) {
	uc := &mockOrderQueryUseCase{}

	for _, target := range []string{"/admin/orders?status=lost", "/admin/orders?date=year"} {
		rec := httptest.NewRecorder()
		newTestRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestListOrders_UseCaseFailure(t *testing.T) {
	uc := &mockOrderQueryUseCase{
		ListOrdersFunc: func(ctx context.Context, q dto.ListOrdersQuery) ([]dto.OrderDTO, error) {
			return nil, errors.New("boom")
		},
	}

	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetOrder(t *testing.T) {
	uc := &mockOrderQueryUseCase{
		GetOrderFunc: func(ctx context.Context, id string) (*dto.OrderDetailsDTO, error) {
			if id != "ORD-001" {
				return nil, apperrors.NewNotFoundError("order with id " + id + " not found")
			}
			return &dto.OrderDetailsDTO{
				OrderDTO:   dto.OrderDTO{ID: "ORD-001"},
				Milestones: dto.MilestonesDTO{Total: 3, Completed: 1, Progress: 100.0 / 3},
			}, nil
		},
	}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders/ORD-001", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"ORD-001"`)
	assert.Contains(t, rec.Body.String(), `"milestones":{"total":3,"completed":1`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders/ORD-404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"NOT_FOUND"`)
}
