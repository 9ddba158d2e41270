package commons

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"univadmin/internal/dto"
	apperrors "univadmin/internal/errors"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeMethod     = "METHOD_NOT_ALLOWED"
	CodeRateLimit  = "RATE_LIMITED"
	CodeInternal   = "INTERNAL_ERROR"
)

func NewTraceID() string {
	return uuid.New().String()
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteError(w http.ResponseWriter, traceID string, status int, code, message string, logger *zap.Logger) {
	WriteJSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Error:     code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}, logger)
}

// WriteValidationError answers with the field details and the flattened
// field -> message map.
func WriteValidationError(w http.ResponseWriter, traceID string, status int, ve *apperrors.ValidationError, logger *zap.Logger) {
	WriteJSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Error:     CodeValidation,
		Message:   ve.Message,
		Details:   ve.Details,
		Errors:    ve.Fields(),
		Timestamp: time.Now().UTC(),
	}, logger)
}

// WriteInvalidBody is the answer to a request body that is not valid JSON.
func WriteInvalidBody(w http.ResponseWriter, traceID string, logger *zap.Logger) {
	WriteValidationError(w, traceID, http.StatusBadRequest, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
		Field:   "body",
		Message: "request body must be valid JSON",
	}), logger)
}

// HandleError maps a use case error to its HTTP answer. Unknown errors are
// logged and reported as 500 without leaking the cause.
func HandleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteValidationError(w, traceID, http.StatusBadRequest, ve, logger)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		WriteError(w, traceID, http.StatusNotFound, CodeNotFound, nfe.Message, logger)
		return
	}

	if ie, ok := apperrors.IsInternalError(err); ok {
		logger.Error(ie.Message, zap.Error(ie.Cause))
		WriteError(w, traceID, http.StatusInternalServerError, CodeInternal, ie.Message, logger)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteError(w, traceID, http.StatusInternalServerError, CodeInternal, "an unexpected error occurred", logger)
}
