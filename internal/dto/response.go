package dto

import (
	"time"

	apperrors "univadmin/internal/errors"
)

// ListResponse wraps every list endpoint. Total is the filtered count.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

type ErrorResponse struct {
	TraceID   string                       `json:"traceId"`
	Status    int                          `json:"status"`
	Error     string                       `json:"error"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Errors    map[string]string            `json:"errors,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}
